package i18n

import "strings"

// Locale is a supported UI language
type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
)

// Supported reports whether the locale is one of the bundled languages
func Supported(locale string) bool {
	return locale == string(LocaleFR) || locale == string(LocaleEN)
}

// OfferText holds a localized offer name and description
type OfferText struct {
	Name string
	Desc string
}

type table struct {
	strings map[string]string
	offers  map[string]OfferText
}

var tables = map[Locale]table{
	LocaleFR: {
		strings: map[string]string{
			"ui_add_to_cart":              "Ajouter au panier",
			"ui_contact_an_expert":        "Contacter un expert",
			"ui_contact_advisor":          "Contacter un conseiller",
			"ui_learn_more":               "En savoir plus",
			"ui_agent_welcome":            "Bonjour ! Je suis Alex, votre conseiller dédié pour {offerName}. Que souhaitez-vous savoir ?",
			"ui_faq_title":                "Aide et support",
			"ui_faq_no_answer":            "Je n'ai pas trouvé de réponse précise dans ma base de connaissances. Souhaitez-vous une aide plus personnalisée ?",
			"ui_no_match":                 "Aucune offre ne correspond à votre sélection.",
			"ui_pro_services_title":       "Un accompagnement expert ?",
			"ui_pro_services_desc":        "Nos services professionnels garantissent un déploiement réussi de votre solution. Souhaitez-vous les ajouter ?",
			"ui_pro_services_confirm":     "Oui, ajouter",
			"ui_pro_services_decline":     "Non merci",
			"ui_contact_request_received": "Votre demande a bien été prise en compte. Un conseiller vous recontacte très vite.",
			"proactive_webex_licenses":    "Il semble que vos licences Webex arrivent à échéance. Souhaitez-vous faire le point avec un conseiller ?",
			"proactive_webex_cta":         "Échanger avec un conseiller",
		},
		offers: map[string]OfferText{},
	},
	LocaleEN: {
		strings: map[string]string{
			"ui_add_to_cart":              "Add to cart",
			"ui_contact_an_expert":        "Contact an expert",
			"ui_contact_advisor":          "Contact an advisor",
			"ui_learn_more":               "Learn more",
			"ui_agent_welcome":            "Hello! I'm Alex, your dedicated advisor for {offerName}. What would you like to know?",
			"ui_faq_title":                "Help & support",
			"ui_faq_no_answer":            "I could not find a precise answer in my knowledge base. Would you like more personalized help?",
			"ui_no_match":                 "No offer matches your selection.",
			"ui_pro_services_title":       "Expert guidance?",
			"ui_pro_services_desc":        "Our professional services guarantee a successful rollout of your solution. Would you like to add them?",
			"ui_pro_services_confirm":     "Yes, add them",
			"ui_pro_services_decline":     "No thanks",
			"ui_contact_request_received": "Your request has been received. An advisor will get back to you shortly.",
			"proactive_webex_licenses":    "It looks like your Webex licenses are about to expire. Would you like to review them with an advisor?",
			"proactive_webex_cta":         "Talk to an advisor",
		},
		offers: map[string]OfferText{
			"O001": {Name: "SD-WAN Flex Connectivity", Desc: "Manage and secure the connections of all your sites with a managed SD-WAN."},
			"O004": {Name: "SASE Secure Edge", Desc: "Network and security converged in the cloud for your users, wherever they are."},
			"O013": {Name: "Workplace Together Webex", Desc: "Meetings, messaging and calling in a single collaborative Webex application."},
			"O015": {Name: "Mobile Fleet Management", Desc: "Deploy, secure and administer your whole fleet of mobile devices."},
		},
	},
}

// Translator resolves user-visible strings for one locale, falling back
// to English for unknown keys and to the catalog's default-language
// fields for untranslated offers.
type Translator struct {
	locale Locale
}

// NewTranslator returns a translator for the locale, defaulting to
// English when the locale is not bundled.
func NewTranslator(locale string) *Translator {
	if !Supported(locale) {
		return &Translator{locale: LocaleEN}
	}
	return &Translator{locale: Locale(locale)}
}

// Locale returns the resolved locale
func (t *Translator) Locale() Locale {
	return t.locale
}

// T returns the localized string for key, or the key itself when no
// translation exists in either language.
func (t *Translator) T(key string) string {
	if v, ok := tables[t.locale].strings[key]; ok {
		return v
	}
	if v, ok := tables[LocaleEN].strings[key]; ok {
		return v
	}
	return key
}

// Tf returns the localized string for key with {placeholder} values
// substituted.
func (t *Translator) Tf(key string, replacements map[string]string) string {
	out := t.T(key)
	for k, v := range replacements {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

// OfferName returns the localized offer name, falling back to the
// catalog default.
func (t *Translator) OfferName(offerID, fallback string) string {
	if o, ok := tables[t.locale].offers[offerID]; ok && o.Name != "" {
		return o.Name
	}
	return fallback
}

// OfferDesc returns the localized offer description, falling back to
// the catalog default.
func (t *Translator) OfferDesc(offerID, fallback string) string {
	if o, ok := tables[t.locale].offers[offerID]; ok && o.Desc != "" {
		return o.Desc
	}
	return fallback
}
