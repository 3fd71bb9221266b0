package catalog

import "github.com/offerassist/assist-agent-be/internal/modules/assist/models"

// PersonaOrder is the fixed priority used when building the initial
// keyword suggestions. Earlier personas claim keywords first.
var PersonaOrder = []string{
	"cio",
	"telecom_manager",
	"ciso",
	"coo",
	"cx_leader",
	"data_leader",
	"pme_owner",
}

// Personas maps persona key to its keyword cluster. The Style field is
// purely cosmetic (chip color family on the client side).
var Personas = map[string]models.Persona{
	"cio": {
		Key:   "cio",
		Style: "blue",
		Tags: []string{
			"sd-wan", "cloud", "internet access", "lan", "wan",
			"cloud connectivity", "sase", "network security", "cisco",
			"cloud management", "iaas", "sovereign cloud", "it services",
			"observability",
		},
	},
	"ciso": {
		Key:   "ciso",
		Style: "purple",
		Tags: []string{
			"cybersecurity", "sase", "sécurité mobile", "threat detection",
			"data protection", "network security", "incident response",
			"cyber resilience", "endpoint security",
		},
	},
	"telecom_manager": {
		Key:   "telecom_manager",
		Style: "lime",
		Tags: []string{
			"gestion de flotte", "mdm", "5g", "telephony", "lan", "wan",
			"voip", "toip", "mobile device management", "emm", "calling",
			"esim",
		},
	},
	"coo": {
		Key:   "coo",
		Style: "teal",
		Tags: []string{
			"iot", "gestion de flotte", "5g", "mdm", "industrie 4.0", "lan",
			"private network", "device management", "asset management",
		},
	},
	"cx_leader": {
		Key:   "cx_leader",
		Style: "orange",
		Tags: []string{
			"contact center", "cdp", "analytics", "customer journey",
			"omnichannel", "calling", "genesys",
		},
	},
	"pme_owner": {
		Key:   "pme_owner",
		Style: "green",
		Tags: []string{
			"internet access", "telephony", "collaboration", "sd-branch",
			"webex", "cloud", "voip",
		},
	},
	"data_leader": {
		Key:   "data_leader",
		Style: "amber",
		Tags: []string{
			"ai", "genai", "data platform", "data architecture", "analytics",
			"data governance", "data-driven cx",
		},
	},
}

// PersonaForKeyword returns the first persona (in PersonaOrder) whose
// cluster contains the keyword, defaulting to cio.
func PersonaForKeyword(keyword string) string {
	for _, key := range PersonaOrder {
		persona := Personas[key]
		if persona.HasTag(keyword) {
			return key
		}
	}
	return "cio"
}

// ProactiveTrigger describes the attention-grabbing message shown when
// the widget opens on a specific page.
type ProactiveTrigger struct {
	MessageKey string `json:"message_key"`
	CTAKey     string `json:"cta_key"`
}

// ProactiveTriggers maps page URLs to their proactive message
var ProactiveTriggers = map[string]ProactiveTrigger{
	"https://www.orange-business.com/be-en/solutions/collaboration-remote-working/workplace-together-webex": {
		MessageKey: "proactive_webex_licenses",
		CTAKey:     "proactive_webex_cta",
	},
}
