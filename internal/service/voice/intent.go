package voice

import (
	"strings"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

// Language codes understood by the detector.
const (
	LangES = "es"
	LangEN = "en"
)

// Intent is the classification of one utterance.
type Intent struct {
	Type       domain.IntentType
	Label      string
	Confidence float64
	Language   string
	Matches    []string
}

type keyword struct {
	phrase string
	lang   string
}

type rule struct {
	intent   domain.IntentType
	label    string
	keywords []keyword
}

func es(phrases ...string) []keyword { return tag(LangES, phrases) }
func en(phrases ...string) []keyword { return tag(LangEN, phrases) }

func tag(lang string, phrases []string) []keyword {
	out := make([]keyword, len(phrases))
	for i, p := range phrases {
		out[i] = keyword{phrase: p, lang: lang}
	}
	return out
}

// rules are in priority order; ties go to the earlier rule.
var rules = []rule{
	{
		intent: domain.IntentTypeCancel, label: "cancel",
		keywords: append(es("cancelar", "cancela", "anular", "anula", "ya no puedo ir"),
			en("cancel", "call off", "can't make it")...),
	},
	{
		intent: domain.IntentTypeReschedule, label: "reschedule",
		keywords: append(es("cambiar", "cambia", "mover", "reprogramar", "otro dia", "otra hora", "aplazar"),
			en("reschedule", "move my", "change my", "another day", "another time")...),
	},
	{
		intent: domain.IntentTypeSchedule, label: "schedule",
		keywords: append(es("cita", "reservar", "reserva", "agendar", "turno", "pedir hora", "quiero una hora"),
			en("appointment", "book", "booking", "schedule", "reserve")...),
	},
	{
		intent: domain.IntentTypeBusinessInfo, label: "business_info",
		keywords: append(es("horario", "precio", "cuanto cuesta", "cuanto vale", "direccion", "donde estan", "abren", "cierran", "servicios"),
			en("hours", "price", "how much", "address", "where are you", "open", "close", "services")...),
	},
	{
		intent: domain.IntentTypeGreeting, label: "greeting",
		keywords: append(es("hola", "buenos dias", "buenas tardes", "buenas noches", "buenas"),
			en("hello", "hi", "hey", "good morning", "good afternoon", "good evening")...),
	},
}

var folder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"¿", " ", "?", " ", "¡", " ", "!", " ", ",", " ", ".", " ", ";", " ", ":", " ",
)

func normalize(text string) string {
	return " " + strings.Join(strings.Fields(folder.Replace(strings.ToLower(text))), " ") + " "
}

// DetectIntent classifies text by keyword matching in Spanish and English.
// The rule with the most matches wins. Confidence grows with the number of
// matches. Text with no match is IntentTypeOther.
func DetectIntent(text string) Intent {
	norm := normalize(text)

	best := -1
	var bestHits []string
	langHits := map[string]int{}
	for i, r := range rules {
		var hits []string
		for _, k := range r.keywords {
			if strings.Contains(norm, " "+k.phrase+" ") {
				hits = append(hits, k.phrase)
				langHits[k.lang]++
			}
		}
		if len(hits) > len(bestHits) {
			best, bestHits = i, hits
		}
	}

	lang := LangES
	if langHits[LangEN] > langHits[LangES] {
		lang = LangEN
	}

	if best < 0 {
		return Intent{Type: domain.IntentTypeOther, Label: "other", Confidence: 0.3, Language: lang}
	}
	return Intent{
		Type:       rules[best].intent,
		Label:      rules[best].label,
		Confidence: min(0.5+0.15*float64(len(bestHits)), 0.95),
		Language:   lang,
		Matches:    bestHits,
	}
}

var responses = map[string]map[domain.IntentType]string{
	LangES: {
		domain.IntentTypeSchedule:     "Con gusto te ayudo a reservar una cita en %s. ¿Qué servicio necesitas y qué día te viene bien?",
		domain.IntentTypeCancel:       "Entiendo que quieres cancelar tu cita en %s. ¿Me confirmas tu nombre y la fecha de la cita?",
		domain.IntentTypeReschedule:   "Claro, podemos cambiar tu cita en %s. ¿Para qué día y hora te gustaría moverla?",
		domain.IntentTypeBusinessInfo: "Te cuento sobre %s. ¿Quieres saber el horario, los servicios o la dirección?",
		domain.IntentTypeGreeting:     "¡Hola! Gracias por comunicarte con %s. ¿En qué puedo ayudarte?",
		domain.IntentTypeOther:        "Disculpa, no te he entendido. En %s puedo ayudarte con citas e información del negocio.",
	},
	LangEN: {
		domain.IntentTypeSchedule:     "I'd be glad to book an appointment at %s. Which service do you need and what day suits you?",
		domain.IntentTypeCancel:       "I understand you want to cancel your appointment at %s. Could you confirm your name and the date?",
		domain.IntentTypeReschedule:   "Sure, we can move your appointment at %s. Which day and time would you prefer?",
		domain.IntentTypeBusinessInfo: "Happy to tell you about %s. Would you like our hours, services or address?",
		domain.IntentTypeGreeting:     "Hello! Thanks for contacting %s. How can I help you?",
		domain.IntentTypeOther:        "Sorry, I didn't catch that. At %s I can help with appointments and business information.",
	},
}
