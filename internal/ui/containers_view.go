package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ScribblerCoder/whale-admin/internal/api"
	"github.com/ScribblerCoder/whale-admin/internal/model"
)

// ContainersView renders one page of alive challenge containers with renew and
// remove actions per row.
type ContainersView struct {
	window       fyne.Window
	admin        api.ContainerAdmin
	notifier     Notifier
	localization *Localization
	timeout      time.Duration

	list       *widget.List
	containers []*model.Container
	page       int
	pages      int
	total      int

	pageLabel *widget.Label
	prevBtn   *widget.Button
	nextBtn   *widget.Button
	reloadBtn *widget.Button
	box       *fyne.Container
}

// NewContainersView creates the containers admin view
func NewContainersView(window fyne.Window, admin api.ContainerAdmin, notifier Notifier, localization *Localization, timeout time.Duration) *ContainersView {
	v := &ContainersView{
		window:       window,
		admin:        admin,
		notifier:     notifier,
		localization: localization,
		timeout:      timeout,
		page:         1,
	}

	v.list = widget.NewList(
		func() int { return len(v.containers) },
		func() fyne.CanvasObject { return v.createRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { v.updateRow(id, obj) },
	)

	v.pageLabel = widget.NewLabel(localization.GetText(KeyNoContainers))
	v.prevBtn = widget.NewButton(IconPrev, v.onPrevPage)
	v.nextBtn = widget.NewButton(IconNext, v.onNextPage)
	v.reloadBtn = widget.NewButton(localization.GetText(KeyReload), v.onReloadClick)
	v.prevBtn.Disable()
	v.nextBtn.Disable()

	toolbar := container.NewHBox(v.reloadBtn, layout.NewSpacer(), v.prevBtn, v.pageLabel, v.nextBtn)
	v.box = container.NewBorder(toolbar, nil, nil, nil, v.list)
	return v
}

// Container returns the widget tree for embedding in the window layout
func (v *ContainersView) Container() fyne.CanvasObject {
	return v.box
}

func (v *ContainersView) onReloadClick() {
	go v.Reload()
}

func (v *ContainersView) onPrevPage() {
	if v.page > 1 {
		v.page--
		go v.Reload()
	}
}

func (v *ContainersView) onNextPage() {
	if v.page < v.pages {
		v.page++
		go v.Reload()
	}
}

// Reload fetches the current page and refreshes the list
func (v *ContainersView) Reload() {
	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()

	page, err := v.admin.ListContainers(ctx, v.page, DefaultContainersPerPage)

	fyne.Do(func() {
		if err != nil {
			v.notifier.Notify(v.localization.GetText(KeyErrorTitle), err.Error(), NotifyError)
			return
		}

		v.containers = page.Containers
		v.total = page.Total
		v.pages = page.Pages

		if v.total == 0 {
			v.pageLabel.SetText(v.localization.GetText(KeyNoContainers))
		} else {
			v.pageLabel.SetText(fmt.Sprintf(v.localization.GetText(KeyPageOf), v.page, v.pages))
		}

		if v.page > 1 {
			v.prevBtn.Enable()
		} else {
			v.prevBtn.Disable()
		}
		if v.page < v.pages {
			v.nextBtn.Enable()
		} else {
			v.nextBtn.Disable()
		}

		v.list.Refresh()
	})
}

func (v *ContainersView) createRow() fyne.CanvasObject {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis

	renewBtn := widget.NewButton(v.localization.GetText(KeyRenew), nil)
	renewBtn.Importance = widget.LowImportance
	removeBtn := widget.NewButton(v.localization.GetText(KeyRemove), nil)
	removeBtn.Importance = widget.DangerImportance

	return container.NewHBox(label, layout.NewSpacer(), renewBtn, removeBtn)
}

func (v *ContainersView) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(v.containers) {
		return
	}
	c := v.containers[id]

	row, ok := obj.(*fyne.Container)
	if !ok || len(row.Objects) < 4 {
		return
	}

	label := row.Objects[0].(*widget.Label)
	renewBtn := row.Objects[2].(*widget.Button)
	removeBtn := row.Objects[3].(*widget.Button)

	port := DashPlaceholder
	if c.Port > 0 {
		port = strconv.Itoa(c.Port)
	}
	label.SetText(c.DisplayName() + MiddleDotSeparator + c.ShortUUID() +
		MiddleDotSeparator + "port " + port +
		MiddleDotSeparator + "renewed ×" + strconv.Itoa(c.RenewCount))

	// Re-bind callbacks on every update so rows track their current container
	renewBtn.OnTapped = func() { v.onRenew(c.UserID) }
	removeBtn.OnTapped = func() { v.onRemove(c.UserID) }

	renewBtn.SetText(v.localization.GetText(KeyRenew))
	removeBtn.SetText(v.localization.GetText(KeyRemove))
}

// onRenew extends the lifetime of the given user's container
func (v *ContainersView) onRenew(userID int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
		defer cancel()

		msg, err := v.admin.RenewContainer(ctx, userID)
		if err != nil {
			log.Printf("Renew failed for user %d: %v", userID, err)
			fyne.Do(func() {
				v.notifier.Notify(v.localization.GetText(KeyErrorTitle), err.Error(), NotifyError)
			})
			return
		}

		fyne.Do(func() {
			v.notifier.Notify(v.localization.GetText(KeySuccessTitle), msg, NotifySuccess)
		})
		v.Reload()
	}()
}

// onRemove asks for confirmation, then destroys the given user's container
func (v *ContainersView) onRemove(userID int) {
	dialog.ShowConfirm(
		v.localization.GetText(KeyRemove),
		v.localization.GetText(KeyRemoveConfirm),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
				defer cancel()

				msg, err := v.admin.RemoveContainer(ctx, userID)
				if err != nil {
					log.Printf("Remove failed for user %d: %v", userID, err)
					fyne.Do(func() {
						v.notifier.Notify(v.localization.GetText(KeyErrorTitle), err.Error(), NotifyError)
					})
					return
				}

				fyne.Do(func() {
					v.notifier.Notify(v.localization.GetText(KeySuccessTitle), msg, NotifySuccess)
				})
				v.Reload()
			}()
		},
		v.window,
	)
}
