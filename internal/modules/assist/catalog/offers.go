package catalog

import "github.com/offerassist/assist-agent-be/internal/modules/assist/models"

// ProServicesOfferID is the distinguished offer whose cart insertion
// triggers the professional-services companion prompt.
const ProServicesOfferID = "O001"

// ProServicesCompanion is the fixed companion product added when the
// visitor confirms the professional-services prompt.
var ProServicesCompanion = models.Offer{
	OfferID:     "PS001",
	Name:        "Services Professionnels - Accompagnement Expert",
	Description: "Audit, conception et pilotage de votre déploiement par un expert Orange Business.",
	URL:         "https://www.orange-business.com/be-en/services/professional-services",
	Keywords:    models.KeywordList{"it services", "tag_companion"},
	IsActive:    true,
}

// Offers is the static offer catalog. Loaded once at startup; read-only
// afterwards. Keywords prefixed tag_ are internal facets.
var Offers = []models.Offer{
	{
		OfferID:     "O001",
		Name:        "Connectivité SD-WAN Flex",
		Description: "Pilotez et sécurisez les connexions de tous vos sites avec un SD-WAN managé.",
		URL:         "https://www.orange-business.com/be-en/solutions/sd-wan-flex",
		Keywords:    models.KeywordList{"sd-wan", "wan", "network security", "cloud connectivity", "tag_flagship"},
	},
	{
		OfferID:     "O002",
		Name:        "Cloud Connect Direct",
		Description: "Raccordement privé et garanti de vos sites vers les principaux clouds publics.",
		URL:         "https://www.orange-business.com/be-en/solutions/cloud-connect",
		Keywords:    models.KeywordList{"cloud", "cloud connectivity", "wan", "sd-wan", "iaas"},
	},
	{
		OfferID:     "O003",
		Name:        "Accès Internet Pro Fibre",
		Description: "Un accès internet fibre dédié pour vos sites, avec supervision et garantie de temps de rétablissement.",
		URL:         "https://www.orange-business.com/be-en/solutions/internet-pro-fibre",
		Keywords:    models.KeywordList{"internet access", "lan", "wan", "sd-wan", "tag_smb"},
	},
	{
		OfferID:     "O004",
		Name:        "SASE Secure Edge",
		Description: "Convergence du réseau et de la sécurité dans le cloud pour vos utilisateurs, où qu'ils soient.",
		URL:         "https://www.orange-business.com/be-en/solutions/sase-secure-edge",
		Keywords:    models.KeywordList{"sase", "sd-wan", "network security", "cybersecurity", "cloud"},
	},
	{
		OfferID:     "O005",
		Name:        "Sovereign Cloud Entreprise",
		Description: "Hébergez vos applications critiques dans un cloud souverain certifié.",
		URL:         "https://www.orange-business.com/be-en/solutions/sovereign-cloud",
		Keywords:    models.KeywordList{"cloud", "sovereign cloud", "iaas", "data protection"},
	},
	{
		OfferID:     "O006",
		Name:        "Observabilité Réseau 360",
		Description: "Supervision unifiée de vos réseaux LAN, WAN et cloud avec analyse proactive des anomalies.",
		URL:         "https://www.orange-business.com/be-en/solutions/observabilite-reseau",
		Keywords:    models.KeywordList{"observability", "lan", "wan", "cloud", "it services"},
	},
	{
		OfferID:     "O007",
		Name:        "Cloud Management Services",
		Description: "Exploitation et optimisation de vos environnements cloud par nos équipes certifiées.",
		URL:         "https://www.orange-business.com/be-en/solutions/cloud-management",
		Keywords:    models.KeywordList{"cloud management", "cloud", "iaas", "it services", "tag_enterprise"},
	},
	{
		OfferID:     "O008",
		Name:        "Téléphonie Collaborative VoIP",
		Description: "Basculez votre téléphonie d'entreprise vers une solution VoIP collaborative et évolutive.",
		URL:         "https://www.orange-business.com/be-en/solutions/telephonie-voip",
		Keywords:    models.KeywordList{"telephony", "voip", "toip", "calling", "collaboration"},
	},
	{
		OfferID:     "O009",
		Name:        "Cyberdéfense Managée",
		Description: "Détection et neutralisation des menaces 24/7 par notre centre opérationnel de sécurité.",
		URL:         "https://www.orange-business.com/be-en/solutions/cyberdefense-managee",
		Keywords:    models.KeywordList{"cybersecurity", "threat detection", "incident response", "network security", "sase"},
	},
	{
		OfferID:     "O010",
		Name:        "Protection des Données Critiques",
		Description: "Sauvegarde immuable et plan de cyber-résilience pour vos données sensibles.",
		URL:         "https://www.orange-business.com/be-en/solutions/protection-donnees",
		Keywords:    models.KeywordList{"data protection", "cybersecurity", "cyber resilience", "network security", "sase"},
	},
	{
		OfferID:     "O011",
		Name:        "Sécurité des Terminaux Mobiles",
		Description: "Protégez smartphones et tablettes de vos collaborateurs contre les menaces mobiles.",
		URL:         "https://www.orange-business.com/be-en/solutions/securite-terminaux",
		Keywords:    models.KeywordList{"endpoint security", "sécurité mobile", "cybersecurity", "mdm"},
	},
	{
		OfferID:     "O012",
		Name:        "Détection et Réponse aux Menaces",
		Description: "Une réponse experte aux incidents de sécurité, de l'alerte à la remédiation.",
		URL:         "https://www.orange-business.com/be-en/solutions/detection-reponse",
		Keywords:    models.KeywordList{"threat detection", "incident response", "cybersecurity", "cyber resilience"},
	},
	{
		OfferID:     "O013",
		Name:        "Workplace Together Webex",
		Description: "Réunions, messagerie et appels dans une seule application collaborative Webex.",
		URL:         "https://www.orange-business.com/be-en/solutions/collaboration-remote-working/workplace-together-webex",
		Keywords:    models.KeywordList{"webex", "collaboration", "calling", "telephony", "voip", "tag_webex"},
	},
	{
		OfferID:     "O014",
		Name:        "Centre de Contact Omnicanal",
		Description: "Orchestrez les parcours clients sur tous les canaux avec un centre de contact cloud.",
		URL:         "https://www.orange-business.com/be-en/solutions/centre-contact-omnicanal",
		Keywords:    models.KeywordList{"contact center", "omnichannel", "customer journey", "calling", "telephony", "voip"},
	},
	{
		OfferID:     "O015",
		Name:        "Gestion de Flotte Mobile",
		Description: "Déployez, sécurisez et administrez l'ensemble de votre flotte de terminaux mobiles.",
		URL:         "https://www.orange-business.com/be-en/solutions/gestion-flotte-mobile",
		Keywords:    models.KeywordList{"gestion de flotte", "mdm", "mobile device management", "emm", "5g", "esim"},
	},
	{
		OfferID:     "O016",
		Name:        "Réseau Privé 5G Industrie",
		Description: "Un réseau 5G privé dimensionné pour vos sites industriels et vos usages critiques.",
		URL:         "https://www.orange-business.com/be-en/solutions/reseau-prive-5g",
		Keywords:    models.KeywordList{"5g", "private network", "iot", "industrie 4.0", "lan", "internet access"},
	},
	{
		OfferID:     "O017",
		Name:        "Plateforme IoT Connectée",
		Description: "Connectez et supervisez vos objets et capteurs à grande échelle.",
		URL:         "https://www.orange-business.com/be-en/solutions/plateforme-iot",
		Keywords:    models.KeywordList{"iot", "device management", "5g", "asset management", "gestion de flotte"},
	},
	{
		OfferID:     "O018",
		Name:        "Data Platform GenAI",
		Description: "Industrialisez vos cas d'usage d'IA générative sur une plateforme de données unifiée.",
		URL:         "https://www.orange-business.com/be-en/solutions/data-platform-genai",
		Keywords:    models.KeywordList{"ai", "genai", "data platform", "data architecture", "analytics"},
	},
	{
		OfferID:     "O019",
		Name:        "Analytics & CDP Client",
		Description: "Unifiez vos données clients et activez-les en temps réel sur tous vos canaux.",
		URL:         "https://www.orange-business.com/be-en/solutions/analytics-cdp",
		Keywords:    models.KeywordList{"analytics", "cdp", "customer journey", "data-driven cx", "omnichannel", "contact center", "ai"},
	},
	{
		OfferID:     "O020",
		Name:        "Gouvernance des Données",
		Description: "Cadrez la qualité, la conformité et le cycle de vie de vos données d'entreprise.",
		URL:         "https://www.orange-business.com/be-en/solutions/gouvernance-donnees",
		Keywords:    models.KeywordList{"data governance", "data platform", "analytics", "ai", "data architecture"},
	},
	{
		OfferID:     "O021",
		Name:        "Collaboration SD-Branch PME",
		Description: "Internet, réseau local et collaboration dans une offre tout-en-un pour les PME.",
		URL:         "https://www.orange-business.com/be-en/solutions/sd-branch-pme",
		Keywords:    models.KeywordList{"sd-branch", "internet access", "collaboration", "webex", "telephony", "tag_smb"},
	},
	{
		OfferID:     "O022",
		Name:        "Mobilité eSIM Entreprise",
		Description: "Activez et gérez les lignes mobiles de vos collaborateurs sans carte physique.",
		URL:         "https://www.orange-business.com/be-en/solutions/mobilite-esim",
		Keywords:    models.KeywordList{"esim", "5g", "gestion de flotte", "sécurité mobile", "mdm"},
	},
	{
		OfferID:     "O023",
		Name:        "Expérience Client Genesys",
		Description: "Déployez la plateforme Genesys Cloud avec l'accompagnement de nos experts CX.",
		URL:         "https://www.orange-business.com/be-en/solutions/experience-client-genesys",
		Keywords:    models.KeywordList{"genesys", "contact center", "omnichannel", "customer journey", "calling"},
	},
}
