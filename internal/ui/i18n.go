package ui

// Language selects the UI string catalog.
type Language string

const (
	LangEN Language = "en"
	LangRU Language = "ru"
	LangES Language = "es"
)

// Next cycles en -> ru -> es -> en.
func (l Language) Next() Language {
	switch l {
	case LangEN:
		return LangRU
	case LangRU:
		return LangES
	default:
		return LangEN
	}
}

// Strings is one language catalog.
type Strings struct {
	Title       string
	Host        string
	User        string
	Pass        string
	Connect     string
	Connecting  string
	FetchFailed string
	NoBoards    string
	Slot        string
	Chips       string
	Domains     string
	AvgTemp     string
	Model       string
	ModeTemp    string
	ModeErrors  string
	ModeCRC     string
	Help        string
	Flagged     string
}

var catalogs = map[Language]Strings{
	LangEN: {
		Title:       "chiptop",
		Host:        "Host",
		User:        "Username",
		Pass:        "Password",
		Connect:     "press enter to connect",
		Connecting:  "connecting...",
		FetchFailed: "fetch failed",
		NoBoards:    "no hashboards reported",
		Slot:        "Slot",
		Chips:       "chips",
		Domains:     "domains",
		AvgTemp:     "avg temp",
		Model:       "model",
		ModeTemp:    "temperature",
		ModeErrors:  "errors",
		ModeCRC:     "crc",
		Help:        "r refresh · c color mode · l language · tab next field · q quit",
		Flagged:     "flagged",
	},
	LangRU: {
		Title:       "chiptop",
		Host:        "Хост",
		User:        "Логин",
		Pass:        "Пароль",
		Connect:     "enter — подключиться",
		Connecting:  "подключение...",
		FetchFailed: "ошибка запроса",
		NoBoards:    "платы не обнаружены",
		Slot:        "Плата",
		Chips:       "чипов",
		Domains:     "доменов",
		AvgTemp:     "ср. темп",
		Model:       "модель",
		ModeTemp:    "температура",
		ModeErrors:  "ошибки",
		ModeCRC:     "crc",
		Help:        "r обновить · c режим цвета · l язык · tab след. поле · q выход",
		Flagged:     "отмечено",
	},
	LangES: {
		Title:       "chiptop",
		Host:        "Host",
		User:        "Usuario",
		Pass:        "Contraseña",
		Connect:     "enter para conectar",
		Connecting:  "conectando...",
		FetchFailed: "fallo de consulta",
		NoBoards:    "sin placas detectadas",
		Slot:        "Placa",
		Chips:       "chips",
		Domains:     "dominios",
		AvgTemp:     "temp media",
		Model:       "modelo",
		ModeTemp:    "temperatura",
		ModeErrors:  "errores",
		ModeCRC:     "crc",
		Help:        "r actualizar · c modo de color · l idioma · tab campo sig. · q salir",
		Flagged:     "marcado",
	},
}

// Tr returns the catalog for lang, falling back to English.
func Tr(lang Language) Strings {
	if s, ok := catalogs[lang]; ok {
		return s
	}
	return catalogs[LangEN]
}
