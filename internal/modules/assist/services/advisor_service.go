package services

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/offerassist/assist-agent-be/internal/core/i18n"
	"github.com/offerassist/assist-agent-be/internal/core/rules"
)

// AdvisorAction is the side effect a classified reply carries
type AdvisorAction string

const (
	ActionAddToCart      AdvisorAction = "add_to_cart"
	ActionContactAdvisor AdvisorAction = "contact_advisor"
	ActionAnswer         AdvisorAction = "answer"
)

// AdvisorResponse is the scripted reply of the offer advisor
type AdvisorResponse struct {
	Action      AdvisorAction `json:"action"`
	Text        string        `json:"text"`
	Suggestions []string      `json:"suggestions"`
}

// Intent bucket order matters: the first matching bucket wins.
var advisorRules = rules.NewSet(
	rules.Rule{Name: "purchase", Keywords: []string{"acheter", "commander", "panier", "buy", "purchase", "order"}},
	rules.Rule{Name: "advisor", Keywords: []string{"conseiller", "expert", "contact", "parler", "advisor", "speak"}},
	rules.Rule{Name: "price", Keywords: []string{"prix", "coût", "tarif", "price", "cost"}},
	rules.Rule{Name: "technical", Keywords: []string{"technique", "prérequis", "installation", "technical", "requirements", "setup"}},
	rules.Rule{Name: "timeline", Keywords: []string{"délai", "temps", "rapidement", "timeline", "quickly", "when"}},
	rules.Rule{Name: "benefits", Keywords: []string{"avantage", "bénéfice", "pourquoi", "benefit", "advantage", "why"}},
)

var followUpQuestions = []string{
	"Quels sont les prérequis techniques ?",
	"Combien coûte cette solution ?",
	"Quel est le délai de mise en œuvre ?",
	"Quels sont les avantages principaux ?",
	"Comment se déroule l'installation ?",
	"Quel support est inclus ?",
	"Cette solution est-elle évolutive ?",
	"Quelles sont les options de personnalisation ?",
}

const suggestedQuestionCount = 3

// AdvisorService simulates Alex, the scripted offer advisor. It
// classifies free-text utterances into ordered intent buckets and
// produces canned, offer-templated replies.
type AdvisorService struct {
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewAdvisorService(rng *rand.Rand) *AdvisorService {
	return &AdvisorService{rng: rng}
}

// Classify maps a user utterance to a scripted reply about the offer.
// offerName must already be localized by the caller.
func (s *AdvisorService) Classify(message, offerName string, tr *i18n.Translator) AdvisorResponse {
	quickReplies := []string{tr.T("ui_add_to_cart"), tr.T("ui_contact_an_expert")}

	rule, ok := advisorRules.First(message)
	if !ok {
		return AdvisorResponse{
			Action:      ActionAnswer,
			Text:        fmt.Sprintf("Je serais ravi de vous aider avec **%s**. Cette solution est conçue pour répondre aux besoins des entreprises modernes avec une approche simple et sécurisée.", offerName),
			Suggestions: quickReplies,
		}
	}

	switch rule.Name {
	case "purchase":
		return AdvisorResponse{
			Action:      ActionAddToCart,
			Text:        fmt.Sprintf("Excellente décision ! J'ajoute immédiatement \"%s\" à votre panier.", offerName),
			Suggestions: []string{},
		}
	case "advisor":
		return AdvisorResponse{
			Action:      ActionContactAdvisor,
			Text:        "Bien sûr ! Je vous mets en relation avec un conseiller qui aura tout le contexte pour vous aider au mieux.",
			Suggestions: []string{},
		}
	case "price":
		return AdvisorResponse{
			Action:      ActionAnswer,
			Text:        fmt.Sprintf("Les tarifs de **%s** dépendent de vos besoins spécifiques. Nos conseillers peuvent vous proposer un devis personnalisé adapté à votre infrastructure.", offerName),
			Suggestions: quickReplies,
		}
	case "technical":
		return AdvisorResponse{
			Action:      ActionAnswer,
			Text:        fmt.Sprintf("Pour **%s**, nos équipes techniques s'occupent de l'installation et de la configuration. Nous analysons d'abord votre infrastructure existante pour garantir une intégration optimale.", offerName),
			Suggestions: quickReplies,
		}
	case "timeline":
		return AdvisorResponse{
			Action:      ActionAnswer,
			Text:        fmt.Sprintf("Le déploiement de **%s** prend généralement entre 2 à 4 semaines selon la complexité de votre environnement. Nous vous accompagnons à chaque étape.", offerName),
			Suggestions: quickReplies,
		}
	default: // benefits
		return AdvisorResponse{
			Action:      ActionAnswer,
			Text:        fmt.Sprintf("**%s** vous apporte :\n\n- **Simplicité** : Gestion centralisée et intuitive\n- **Sécurité** : Protection avancée intégrée\n- **Évolutivité** : S'adapte à la croissance de votre entreprise\n- **Support** : Accompagnement expert Orange Business", offerName),
			Suggestions: quickReplies,
		}
	}
}

// SuggestedQuestions draws 3 random follow-up questions, without
// replacement, from the fixed pool of 8.
func (s *AdvisorService) SuggestedQuestions() []string {
	pool := make([]string, len(followUpQuestions))
	copy(pool, followUpQuestions)

	s.rngMu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.rngMu.Unlock()

	return pool[:suggestedQuestionCount]
}
