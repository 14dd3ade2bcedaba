package ui

import (
	"context"
	"log"
	"net/url"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ScribblerCoder/whale-admin/internal/api"
	"github.com/ScribblerCoder/whale-admin/internal/model"
)

// ImagePicker owns the image-selection widget group: the dropdown of available
// images, the load and refresh buttons, and the target image entry the chosen
// name is copied into.
type ImagePicker struct {
	window       fyne.Window
	catalog      api.ImageCatalog
	notifier     Notifier
	localization *Localization
	timeout      time.Duration

	imageSelect *widget.Select
	loadBtn     *widget.Button
	refreshBtn  *widget.Button
	imageEntry  *widget.Entry

	status    model.FetchStatus
	setupOnce sync.Once
	box       *fyne.Container
}

// NewImagePicker creates an image picker bound to the given catalog. A nil
// notifier falls back to modal dialogs on the window.
func NewImagePicker(window fyne.Window, catalog api.ImageCatalog, notifier Notifier, localization *Localization, timeout time.Duration) *ImagePicker {
	if notifier == nil {
		log.Printf("No notifier supplied; falling back to dialog notifications")
		notifier = NewDialogNotifier(window)
	}
	if localization == nil {
		localization = NewLocalization()
	}
	if timeout <= 0 {
		timeout = api.DefaultTimeout
	}

	return &ImagePicker{
		window:       window,
		catalog:      catalog,
		notifier:     notifier,
		localization: localization,
		timeout:      timeout,
		status:       model.FetchStatusIdle,
	}
}

// Setup creates the widgets and wires their handlers. Safe to call more than
// once; only the first call has an effect.
func (p *ImagePicker) Setup() {
	p.setupOnce.Do(p.setup)
}

func (p *ImagePicker) setup() {
	p.imageSelect = widget.NewSelect(nil, p.onImageSelected)
	p.imageSelect.PlaceHolder = p.localization.GetText(KeySelectImage)

	p.imageEntry = widget.NewEntry()
	p.imageEntry.SetPlaceHolder(p.localization.GetText(KeyImagePlaceholder))

	p.loadBtn = widget.NewButton(p.localization.GetText(KeyLoadImages), p.onLoadClick)
	p.refreshBtn = widget.NewButton(p.localization.GetText(KeyRefreshList), p.onRefreshClick)
	p.refreshBtn.Importance = widget.LowImportance

	p.box = container.NewVBox(
		p.imageEntry,
		p.imageSelect,
		container.NewHBox(p.loadBtn, p.refreshBtn),
	)
}

// Container returns the widget tree for embedding in the window layout
func (p *ImagePicker) Container() fyne.CanvasObject {
	return p.box
}

// Status returns the current fetch state of the dropdown
func (p *ImagePicker) Status() model.FetchStatus {
	return p.status
}

// onLoadClick handles the load button click
func (p *ImagePicker) onLoadClick() {
	go p.LoadImages()
}

// onRefreshClick handles the refresh button click
func (p *ImagePicker) onRefreshClick() {
	go p.RefreshList()
}

// onImageSelected copies a non-empty selection into the target entry and hides
// the dropdown. The empty placeholder selection does neither.
func (p *ImagePicker) onImageSelected(value string) {
	if value == "" {
		return
	}
	p.imageEntry.SetText(value)
	p.imageSelect.Hide()
}

// LoadImages fetches the image list and renders it into the dropdown. The load
// button is re-enabled on every exit path.
func (p *ImagePicker) LoadImages() {
	if p.imageSelect == nil || p.loadBtn == nil {
		log.Printf("Image picker not set up; ignoring load request")
		return
	}

	fyne.Do(func() {
		p.status = model.FetchStatusLoading
		p.loadBtn.Disable()
		p.imageSelect.Show()
		p.renderPlaceholder(p.localization.GetText(KeyLoadingImages))
	})

	defer fyne.Do(func() { p.loadBtn.Enable() })

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	names, err := p.catalog.ListImageNames(ctx)

	fyne.Do(func() {
		switch {
		case api.IsServerError(err):
			p.status = model.FetchStatusError
			p.renderPlaceholder(err.Error())
			p.notifier.Notify(p.localization.GetText(KeyErrorTitle), err.Error(), NotifyError)
		case err != nil:
			p.status = model.FetchStatusError
			p.renderPlaceholder(p.localization.GetText(KeyErrorLoading))
			p.notifier.Notify(p.localization.GetText(KeyErrorTitle),
				p.localization.GetText(KeyErrorLoading)+": "+err.Error(), NotifyError)
		case len(names) == 0:
			// An empty catalog is not an error; no notification
			p.status = model.FetchStatusEmpty
			p.renderPlaceholder(p.localization.GetText(KeyNoImages))
		default:
			p.status = model.FetchStatusReady
			p.renderOptions(names)
		}
	})
}

// RefreshList asks the server to rebuild its image cache and reloads the
// dropdown on success. Label and enabled state of the refresh button are
// restored on every exit path.
func (p *ImagePicker) RefreshList() {
	if p.refreshBtn == nil {
		log.Printf("Image picker not set up; ignoring refresh request")
		return
	}

	label := p.localization.GetText(KeyRefreshList)
	fyne.Do(func() {
		p.refreshBtn.Disable()
		p.refreshBtn.SetText(p.localization.GetText(KeyRefreshing))
	})

	defer fyne.Do(func() {
		p.refreshBtn.SetText(label)
		p.refreshBtn.Enable()
	})

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	msg, err := p.catalog.RefreshImages(ctx)
	if err != nil {
		message := err.Error()
		if !api.IsServerError(err) {
			message = p.localization.GetText(KeyErrorRefreshing) + ": " + message
		}
		fyne.Do(func() {
			p.notifier.Notify(p.localization.GetText(KeyErrorTitle), message, NotifyError)
		})
		return
	}

	p.LoadImages()

	if msg == "" {
		msg = p.localization.GetText(KeyRefreshDone)
	}
	fyne.Do(func() {
		p.notifier.Notify(p.localization.GetText(KeySuccessTitle), msg, NotifySuccess)
	})
}

// ApplyLaunchValue pre-fills the target entry from a startup value: either a
// plain image name or a URL carrying an ?image= query parameter. The value is
// applied verbatim and no fetch is triggered.
func (p *ImagePicker) ApplyLaunchValue(raw string) {
	if p.imageEntry == nil {
		log.Printf("Image picker not set up; ignoring launch value %q", raw)
		return
	}
	value := ParseImageParam(raw)
	if value == "" {
		return
	}
	p.imageEntry.SetText(value)
}

// RefreshTexts re-applies localized labels after a language change
func (p *ImagePicker) RefreshTexts() {
	if p.loadBtn == nil {
		return
	}
	p.loadBtn.SetText(p.localization.GetText(KeyLoadImages))
	p.refreshBtn.SetText(p.localization.GetText(KeyRefreshList))
	p.imageEntry.SetPlaceHolder(p.localization.GetText(KeyImagePlaceholder))
	if p.status == model.FetchStatusIdle || p.status == model.FetchStatusReady {
		p.imageSelect.PlaceHolder = p.localization.GetText(KeySelectImage)
		p.imageSelect.Refresh()
	}
}

// renderOptions fills the dropdown with the fetched names, in server order,
// behind the select-one placeholder
func (p *ImagePicker) renderOptions(names []string) {
	p.imageSelect.PlaceHolder = p.localization.GetText(KeySelectImage)
	p.imageSelect.Options = names
	p.imageSelect.ClearSelected()
}

// renderPlaceholder clears the options and shows a single placeholder text
func (p *ImagePicker) renderPlaceholder(text string) {
	p.imageSelect.PlaceHolder = text
	p.imageSelect.Options = nil
	p.imageSelect.ClearSelected()
}

// ParseImageParam extracts the image query parameter from a launch URL. Plain
// image names pass through unchanged; an http(s) URL without the parameter
// carries no image choice.
func ParseImageParam(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if img := u.Query().Get(ImageQueryParam); img != "" {
		return img
	}
	if u.Scheme == "http" || u.Scheme == "https" {
		return ""
	}
	return raw
}
