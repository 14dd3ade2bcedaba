package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyImagesTab        = "images_tab"
	KeyContainersTab    = "containers_tab"
	KeyLoadImages       = "load_images"
	KeyRefreshList      = "refresh_list"
	KeyRefreshing       = "refreshing"
	KeyRefreshDone      = "refresh_done"
	KeySelectImage      = "select_image"
	KeyLoadingImages    = "loading_images"
	KeyNoImages         = "no_images"
	KeyErrorLoading     = "error_loading"
	KeyErrorRefreshing  = "error_refreshing"
	KeyImagePlaceholder = "image_placeholder"
	KeyErrorTitle       = "error_title"
	KeySuccessTitle     = "success_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyServerURL        = "server_url"
	KeyAccessToken      = "access_token"
	KeyRequestTimeout   = "request_timeout"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyInvalidServerURL = "invalid_server_url"
	KeyReload           = "reload"
	KeyRenew            = "renew"
	KeyRemove           = "remove"
	KeyRemoveConfirm    = "remove_confirm"
	KeyNoContainers     = "no_containers"
	KeyPageOf           = "page_of"
	KeyDetails          = "details"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Whale Admin",
		KeyImagesTab:        "Images",
		KeyContainersTab:    "Containers",
		KeyLoadImages:       "Load Images",
		KeyRefreshList:      "Refresh List",
		KeyRefreshing:       "Refreshing...",
		KeyRefreshDone:      "Image list refreshed",
		KeySelectImage:      "-- Select an image --",
		KeyLoadingImages:    "Loading images...",
		KeyNoImages:         "No images available",
		KeyErrorLoading:     "Error loading images",
		KeyErrorRefreshing:  "Error refreshing images",
		KeyImagePlaceholder: "Docker image (e.g. whale/alpine:latest)",
		KeyErrorTitle:       "Error",
		KeySuccessTitle:     "Success",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyServerURL:        "Server URL",
		KeyAccessToken:      "Access Token",
		KeyRequestTimeout:   "Request Timeout (seconds)",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyInvalidServerURL: "Invalid server URL",
		KeyReload:           "Reload",
		KeyRenew:            "Renew",
		KeyRemove:           "Remove",
		KeyRemoveConfirm:    "Destroy this user's container?",
		KeyNoContainers:     "No alive containers",
		KeyPageOf:           "Page %d of %d",
		KeyDetails:          "Details",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Whale Admin",
		KeyImagesTab:        "Образы",
		KeyContainersTab:    "Контейнеры",
		KeyLoadImages:       "Загрузить образы",
		KeyRefreshList:      "Обновить список",
		KeyRefreshing:       "Обновление...",
		KeyRefreshDone:      "Список образов обновлён",
		KeySelectImage:      "-- Выберите образ --",
		KeyLoadingImages:    "Загрузка образов...",
		KeyNoImages:         "Нет доступных образов",
		KeyErrorLoading:     "Ошибка загрузки образов",
		KeyErrorRefreshing:  "Ошибка обновления образов",
		KeyImagePlaceholder: "Docker-образ (напр. whale/alpine:latest)",
		KeyErrorTitle:       "Ошибка",
		KeySuccessTitle:     "Успех",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyServerURL:        "Адрес сервера",
		KeyAccessToken:      "Токен доступа",
		KeyRequestTimeout:   "Таймаут запроса (сек.)",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyInvalidServerURL: "Неверный адрес сервера",
		KeyReload:           "Перезагрузить",
		KeyRenew:            "Продлить",
		KeyRemove:           "Удалить",
		KeyRemoveConfirm:    "Уничтожить контейнер этого пользователя?",
		KeyNoContainers:     "Нет активных контейнеров",
		KeyPageOf:           "Страница %d из %d",
		KeyDetails:          "Детали",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Whale Admin",
		KeyImagesTab:        "Imagens",
		KeyContainersTab:    "Contêineres",
		KeyLoadImages:       "Carregar Imagens",
		KeyRefreshList:      "Atualizar Lista",
		KeyRefreshing:       "Atualizando...",
		KeyRefreshDone:      "Lista de imagens atualizada",
		KeySelectImage:      "-- Selecione uma imagem --",
		KeyLoadingImages:    "Carregando imagens...",
		KeyNoImages:         "Nenhuma imagem disponível",
		KeyErrorLoading:     "Erro ao carregar imagens",
		KeyErrorRefreshing:  "Erro ao atualizar imagens",
		KeyImagePlaceholder: "Imagem Docker (ex. whale/alpine:latest)",
		KeyErrorTitle:       "Erro",
		KeySuccessTitle:     "Sucesso",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyServerURL:        "URL do Servidor",
		KeyAccessToken:      "Token de Acesso",
		KeyRequestTimeout:   "Tempo limite (segundos)",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyInvalidServerURL: "URL do servidor inválida",
		KeyReload:           "Recarregar",
		KeyRenew:            "Renovar",
		KeyRemove:           "Remover",
		KeyRemoveConfirm:    "Destruir o contêiner deste usuário?",
		KeyNoContainers:     "Nenhum contêiner ativo",
		KeyPageOf:           "Página %d de %d",
		KeyDetails:          "Detalhes",
	}
}
