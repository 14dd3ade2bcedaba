package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ScribblerCoder/whale-admin/internal/api"
	"github.com/ScribblerCoder/whale-admin/internal/model"
)

// ImageDetails renders the full image records (size, created, architecture)
// below the picker on the Images tab.
type ImageDetails struct {
	catalog      api.ImageCatalog
	notifier     Notifier
	localization *Localization
	timeout      time.Duration

	list      *widget.List
	images    []model.Image
	reloadBtn *widget.Button
	box       *fyne.Container
}

// NewImageDetails creates the detail table bound to the given catalog
func NewImageDetails(catalog api.ImageCatalog, notifier Notifier, localization *Localization, timeout time.Duration) *ImageDetails {
	d := &ImageDetails{
		catalog:      catalog,
		notifier:     notifier,
		localization: localization,
		timeout:      timeout,
	}

	d.list = widget.NewList(
		func() int { return len(d.images) },
		func() fyne.CanvasObject { return d.createRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { d.updateRow(id, obj) },
	)

	d.reloadBtn = widget.NewButton(localization.GetText(KeyDetails)+" "+IconReload, d.onReloadClick)
	d.reloadBtn.Importance = widget.LowImportance

	d.box = container.NewBorder(
		container.NewHBox(d.reloadBtn), // top
		nil, nil, nil,
		d.list,
	)
	return d
}

// Container returns the widget tree for embedding in the window layout
func (d *ImageDetails) Container() fyne.CanvasObject {
	return d.box
}

func (d *ImageDetails) onReloadClick() {
	go d.Reload()
}

// Reload fetches the image records and refreshes the table
func (d *ImageDetails) Reload() {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	images, err := d.catalog.DescribeImages(ctx)

	fyne.Do(func() {
		if err != nil {
			d.notifier.Notify(d.localization.GetText(KeyErrorTitle), err.Error(), NotifyError)
			return
		}
		d.images = images
		d.list.Refresh()
	})
}

func (d *ImageDetails) createRow() fyne.CanvasObject {
	name := widget.NewLabel("")
	name.TextStyle = fyne.TextStyle{Bold: true}
	name.Truncation = fyne.TextTruncateEllipsis

	meta := widget.NewLabel("")
	meta.Truncation = fyne.TextTruncateEllipsis

	return container.NewBorder(nil, nil, nil, meta, name)
}

func (d *ImageDetails) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(d.images) {
		return
	}
	im := d.images[id]

	row, ok := obj.(*fyne.Container)
	if !ok || len(row.Objects) < 2 {
		return
	}

	// NewBorder places center objects first, then the edge objects
	name := row.Objects[0].(*widget.Label)
	meta := row.Objects[1].(*widget.Label)

	name.SetText(im.DisplayName())

	size := im.Size
	if size == "" {
		size = DashPlaceholder
	}
	created := im.Created
	if created == "" {
		created = DashPlaceholder
	}
	meta.SetText(size + MiddleDotSeparator + created + MiddleDotSeparator + im.Architecture)
}
