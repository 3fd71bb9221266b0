package services

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/offerassist/assist-agent-be/internal/core/rules"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/repositories"
)

const (
	faqTokenMinLength  = 3
	faqPromptChipCount = 4
)

type faqFallback struct {
	rule   rules.Rule
	answer string
}

// Hand-authored category fallbacks, checked in order when no knowledge
// base row matches the query.
var faqFallbacks = []faqFallback{
	{
		rule:   rules.Rule{Name: "password", Keywords: []string{"mot de passe", "password"}},
		answer: "Pour modifier votre mot de passe oublié, vous pouvez utiliser la procédure de réinitialisation par email et SMS depuis la page de connexion.\n\nPour plus d'informations, consultez : [Modifier son mot de passe oublié](https://assistance.orange-business.com/espace-client/modifier-son-mot-de-passe-oublie)",
	},
	{
		rule:   rules.Rule{Name: "account", Keywords: []string{"compte", "utilisateur", "account"}},
		answer: "Pour créer un compte sur l'Espace Client Entreprise, vous devez suivre les étapes complètes de création avec un numéro SIRET valide.\n\nPour plus d'informations, consultez : [Créer son compte sur l'Espace Client Entreprise](https://assistance.orange-business.com/espace-client/creer-son-compte-sur-lespace-client-entreprise)",
	},
	{
		rule:   rules.Rule{Name: "mobile", Keywords: []string{"mobile", "ligne", "sim"}},
		answer: "Pour suivre la consommation d'une ligne mobile, vous pouvez accéder aux informations via l'espace client dans la section Gestion Lignes Mobiles.\n\nPour plus d'informations, consultez : [Suivre la consommation d'une ligne mobile](https://assistance.orange-business.com/mobile/suivre-la-consommation-dune-ligne-mobile)",
	},
	{
		rule:   rules.Rule{Name: "billing", Keywords: []string{"facture", "facturation", "bill"}},
		answer: "Pour obtenir une facture mobile détaillée, vous pouvez la télécharger directement depuis votre espace client dans la section facturation.\n\nPour plus d'informations, consultez : [Obtenir facture mobile détaillée](https://assistance.orange-business.com/mobile/obtenir-facture-mobile-detaillee)",
	},
	{
		rule:   rules.Rule{Name: "dns", Keywords: []string{"dns", "domaine", "domain"}},
		answer: "Pour ajouter un enregistrement DNS, vous pouvez utiliser l'interface de gestion DNS disponible dans votre espace client.\n\nPour plus d'informations, consultez : [Ajouter un enregistrement A](https://assistance.orange-business.com/internet-reseau/ajouter-enregistrement-A)",
	},
	{
		rule:   rules.Rule{Name: "security", Keywords: []string{"sécurité", "phishing", "security"}},
		answer: "Le phishing est une technique d'hameçonnage visant à récupérer vos données personnelles. Il est important de vérifier l'expéditeur et les liens avant de cliquer.\n\nPour plus d'informations, consultez : [Qu'est-ce que le phishing ?](https://assistance.orange-business.com/securite/phishing-definition)",
	},
	{
		rule:   rules.Rule{Name: "incident", Keywords: []string{"incident", "panne", "problème"}},
		answer: "Pour déclarer un incident, vous pouvez utiliser le lien de déclaration d'incident depuis le menu incident de votre espace client.\n\nPour plus d'informations, consultez : [Saisir un incident Fixe](https://assistance.orange-business.com/internet-reseau/declarer-incident-fixe)",
	},
}

// FaqService answers support questions against the static knowledge
// base, with hand-authored category fallbacks.
type FaqService struct {
	faqRepo repositories.FaqRepo

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewFaqService(faqRepo repositories.FaqRepo, rng *rand.Rand) *FaqService {
	return &FaqService{
		faqRepo: faqRepo,
		rng:     rng,
	}
}

// Answer searches the knowledge base for the first row any long-enough
// token of the message appears in, then falls back through the category
// checks. The second return value is false when nothing matched at all.
func (s *FaqService) Answer(message string) (string, bool, error) {
	entries, err := s.faqRepo.ListActive()
	if err != nil {
		return "", false, err
	}

	tokens := longTokens(message)
	for _, entry := range entries {
		for _, token := range tokens {
			if entry.MatchesToken(token) {
				answer := fmt.Sprintf("%s\n\nPour plus d'informations, consultez : [%s](%s)",
					entry.Solution, entry.Title, entry.URL)
				return answer, true, nil
			}
		}
	}

	for _, fb := range faqFallbacks {
		if fb.rule.Matches(message) {
			return fb.answer, true, nil
		}
	}

	return "", false, nil
}

// PromptSuggestions draws 4 random FAQ titles, without replacement, to
// show as quick-start chips.
func (s *FaqService) PromptSuggestions() ([]string, error) {
	titles, err := s.faqRepo.Titles()
	if err != nil {
		return nil, err
	}

	s.rngMu.Lock()
	s.rng.Shuffle(len(titles), func(i, j int) {
		titles[i], titles[j] = titles[j], titles[i]
	})
	s.rngMu.Unlock()

	if len(titles) > faqPromptChipCount {
		titles = titles[:faqPromptChipCount]
	}
	return titles, nil
}

// longTokens splits on whitespace and keeps tokens longer than 3 runes
func longTokens(message string) []string {
	fields := strings.Fields(message)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) > faqTokenMinLength {
			out = append(out, f)
		}
	}
	return out
}
