package catalog

import "github.com/offerassist/assist-agent-be/internal/modules/assist/models"

// FaqEntries is the static support knowledge base. Each row carries the
// question title, the problem it solves, the proposed solution and the
// assistance page it comes from.
var FaqEntries = []models.FaqEntry{
	{
		Title:    "Créer son compte sur l'Espace Client Entreprise",
		Problem:  "Vous souhaitez gérer vos contrats et vos services en ligne mais vous n'avez pas encore d'accès.",
		Solution: "Suivez les étapes de création avec un numéro SIRET valide depuis la page d'inscription de l'Espace Client Entreprise.",
		URL:      "https://assistance.orange-business.com/espace-client/creer-son-compte-sur-lespace-client-entreprise",
	},
	{
		Title:    "Suivre la consommation d'une ligne mobile",
		Problem:  "Vous voulez connaître la consommation voix et data d'une ligne mobile de votre flotte.",
		Solution: "Accédez aux informations de consommation via l'espace client dans la section Gestion Lignes Mobiles.",
		URL:      "https://assistance.orange-business.com/mobile/suivre-la-consommation-dune-ligne-mobile",
	},
	{
		Title:    "Obtenir facture mobile détaillée",
		Problem:  "Vous avez besoin du détail des appels et de la data facturés sur vos lignes mobiles.",
		Solution: "Téléchargez la facture détaillée directement depuis votre espace client dans la section facturation.",
		URL:      "https://assistance.orange-business.com/mobile/obtenir-facture-mobile-detaillee",
	},
	{
		Title:    "Ajouter un enregistrement A",
		Problem:  "Vous devez faire pointer votre nom de domaine vers un nouveau serveur.",
		Solution: "Utilisez l'interface de gestion DNS disponible dans votre espace client pour ajouter l'enregistrement A.",
		URL:      "https://assistance.orange-business.com/internet-reseau/ajouter-enregistrement-A",
	},
	{
		Title:    "Reconnaître un mail de phishing",
		Problem:  "Vous avez reçu un mail suspect qui demande vos identifiants ou vos coordonnées bancaires.",
		Solution: "Vérifiez l'expéditeur et les liens avant de cliquer. Ne transmettez jamais vos identifiants par mail et signalez le message à votre référent sécurité.",
		URL:      "https://assistance.orange-business.com/securite/phishing-definition",
	},
	{
		Title:    "Saisir un incident Fixe",
		Problem:  "Une de vos lignes fixes ou un de vos accès réseau est en dérangement.",
		Solution: "Utilisez le lien de déclaration d'incident depuis le menu incident de votre espace client.",
		URL:      "https://assistance.orange-business.com/internet-reseau/declarer-incident-fixe",
	},
	{
		Title:    "Activer une carte eSIM",
		Problem:  "Vous venez de recevoir un terminal compatible eSIM et souhaitez y transférer une ligne.",
		Solution: "Scannez le QR code d'activation fourni dans votre espace client, rubrique Gestion Lignes Mobiles, puis validez l'activation sur le terminal.",
		URL:      "https://assistance.orange-business.com/mobile/activer-une-carte-esim",
	},
	{
		Title:    "Gérer les droits des utilisateurs",
		Problem:  "Vous voulez donner ou retirer des habilitations à un collaborateur sur l'Espace Client.",
		Solution: "Depuis la rubrique Administration, sélectionnez l'utilisateur concerné puis ajustez ses droits par service.",
		URL:      "https://assistance.orange-business.com/espace-client/gerer-les-droits-des-utilisateurs",
	},
	{
		Title:    "Commander une ligne fixe supplémentaire",
		Problem:  "Votre site a besoin d'une ligne fixe additionnelle pour un nouveau service.",
		Solution: "La commande s'effectue depuis la rubrique Commandes de votre espace client ou auprès de votre interlocuteur commercial habituel.",
		URL:      "https://assistance.orange-business.com/telephonie/commander-ligne-fixe-supplementaire",
	},
	{
		Title:    "Résilier un abonnement mobile",
		Problem:  "Une ligne mobile de votre flotte n'est plus utilisée et vous souhaitez arrêter l'abonnement.",
		Solution: "Adressez votre demande de résiliation depuis la rubrique Gestion Lignes Mobiles de l'espace client, en joignant la référence de la ligne.",
		URL:      "https://assistance.orange-business.com/mobile/resilier-un-abonnement-mobile",
	},
}
