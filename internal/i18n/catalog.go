package i18n

// Lang is a supported interface language.
type Lang string

const (
	LangRU Lang = "ru"
	LangEN Lang = "en"
)

// DefaultLang is used before a user has picked a language and as the
// fallback for closure notifications on tickets without a stored one.
const DefaultLang = LangRU

// Category is a stable question-category key, decoupled from the
// localized button label it is rendered as.
type Category string

const (
	CategoryTech    Category = "tech"
	CategoryPayment Category = "payment"
	CategoryHWID    Category = "hwid"
	CategoryPartner Category = "partner"
	CategoryFAQ     Category = "faq"
)

// Categories in menu order.
var Categories = []Category{
	CategoryTech,
	CategoryPayment,
	CategoryHWID,
	CategoryPartner,
	CategoryFAQ,
}

type texts struct {
	Welcome        string
	Menu           string
	Describe       string
	TicketCreated  string // expects ticket id
	TicketClosed   string // expects ticket id
	CloseTicket    string
	NoActiveTicket string
	LanguageName   string
	Categories     map[Category]string
}

var catalog = map[Lang]texts{
	LangRU: {
		Welcome:        "👋 Добро пожаловать! Выберите язык:",
		Menu:           "📋 Выберите категорию вашего вопроса:",
		Describe:       "✍️ Опишите ваш вопрос:",
		TicketCreated:  "✅ Ваш тикет #%d создан и отправлен в поддержку!\n\nОжидайте ответа. Вы можете закрыть тикет в любой момент.",
		TicketClosed:   "✅ Тикет #%d успешно закрыт.",
		CloseTicket:    "🔴 Закрыть тикет",
		NoActiveTicket: "У вас нет активного тикета.",
		LanguageName:   "Русский",
		Categories: map[Category]string{
			CategoryTech:    "🔧 Техническая помощь",
			CategoryPayment: "💳 Помощь с платежами",
			CategoryHWID:    "🔄 Сброс HWID",
			CategoryPartner: "🤝 Сотрудничество",
			CategoryFAQ:     "❓ FAQ / Цены / Товары",
		},
	},
	LangEN: {
		Welcome:        "👋 Welcome! Choose your language:",
		Menu:           "📋 Select your question category:",
		Describe:       "✍️ Describe your question:",
		TicketCreated:  "✅ Your ticket #%d has been created and sent to support!\n\nPlease wait for a response. You can close the ticket at any time.",
		TicketClosed:   "✅ Ticket #%d has been closed.",
		CloseTicket:    "🔴 Close ticket",
		NoActiveTicket: "You have no active ticket.",
		LanguageName:   "English",
		Categories: map[Category]string{
			CategoryTech:    "🔧 Technical Support",
			CategoryPayment: "💳 Payment Help",
			CategoryHWID:    "🔄 HWID Reset",
			CategoryPartner: "🤝 Partnership",
			CategoryFAQ:     "❓ FAQ / Prices / Products",
		},
	},
}

// Valid reports whether code names a supported language.
func Valid(code string) bool {
	_, ok := catalog[Lang(code)]
	return ok
}

func get(lang Lang) texts {
	if t, ok := catalog[lang]; ok {
		return t
	}
	return catalog[DefaultLang]
}

func Welcome(lang Lang) string        { return get(lang).Welcome }
func Menu(lang Lang) string           { return get(lang).Menu }
func Describe(lang Lang) string       { return get(lang).Describe }
func CloseTicket(lang Lang) string    { return get(lang).CloseTicket }
func NoActiveTicket(lang Lang) string { return get(lang).NoActiveTicket }
func LanguageName(lang Lang) string   { return get(lang).LanguageName }

// TicketCreated and TicketClosed are printf formats taking the ticket id.
func TicketCreated(lang Lang) string { return get(lang).TicketCreated }
func TicketClosed(lang Lang) string  { return get(lang).TicketClosed }

// CategoryLabel returns the localized button label for a category key.
func CategoryLabel(lang Lang, cat Category) string {
	return get(lang).Categories[cat]
}

// CategoryByLabel resolves a localized button label back to its key.
// The menu is a reply keyboard, so the selection arrives as plain text.
func CategoryByLabel(lang Lang, text string) (Category, bool) {
	for cat, label := range get(lang).Categories {
		if text == label {
			return cat, true
		}
	}
	return "", false
}
