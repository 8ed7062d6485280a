package assistant

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

var dayNames = map[string]string{
	"monday":    "lunes",
	"tuesday":   "martes",
	"wednesday": "miércoles",
	"thursday":  "jueves",
	"friday":    "viernes",
	"saturday":  "sábado",
	"sunday":    "domingo",
}

var channelNames = map[string]string{
	"sms":      "SMS",
	"whatsapp": "WhatsApp",
	"email":    "correo",
	"call":     "llamada",
}

// EstimateTokens approximates the token count of a prompt as one token per
// four characters, rounded up.
func EstimateTokens(text string) int {
	return (utf8.RuneCountInString(text) + 3) / 4
}

func generated(text string) domain.PromptInfo {
	return domain.PromptInfo{
		Text:   text,
		Tokens: EstimateTokens(text),
		Source: domain.PromptSourceGenerated,
	}
}

func custom(text string) domain.PromptInfo {
	return domain.PromptInfo{
		Text:     text,
		IsCustom: true,
		Tokens:   EstimateTokens(text),
		Source:   domain.PromptSourceCustom,
	}
}

// VoicePrompt builds the system prompt of the phone assistant.
func VoicePrompt(b *domain.Business, a *domain.Assistant, cfg domain.BehaviorConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Eres %s, la recepcionista telefónica de %s.\n", a.Name, b.Name)
	sb.WriteString("Hablas con clientes por teléfono: responde con frases cortas y naturales, una pregunta a la vez.\n")
	writeBusinessFacts(&sb, cfg)

	sb.WriteString("\nCitas:\n")
	sb.WriteString("- Para reservar pide nombre, teléfono, servicio, fecha y hora.\n")
	sb.WriteString("- Antes de confirmar usa check_availability para la fecha pedida.\n")
	sb.WriteString("- Reserva con book_appointment y repite al cliente la fecha y hora acordadas.\n")
	sb.WriteString("- Nunca ofrezcas horarios fuera del horario de atención.\n")

	writeFollowUps(&sb, cfg)
	return strings.TrimSpace(sb.String())
}

// ChatbotPrompt builds the system prompt of the text assistant.
func ChatbotPrompt(b *domain.Business, a *domain.Assistant, cfg domain.BehaviorConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Eres %s, el asistente de chat de %s.\n", a.Name, b.Name)
	sb.WriteString("Respondes por escrito: sé claro y breve, usa listas cuando ayuden.\n")
	writeBusinessFacts(&sb, cfg)

	if len(cfg.ReactivationWindows) > 0 {
		sb.WriteString("\nReactivación de clientes:\n")
		for _, w := range cfg.ReactivationWindows {
			fmt.Fprintf(&sb, "- %s: tras %d días sin visita, envía: %q\n", w.Name, w.AfterDays, w.Message)
		}
	}

	writeFollowUps(&sb, cfg)
	return strings.TrimSpace(sb.String())
}

func writeBusinessFacts(sb *strings.Builder, cfg domain.BehaviorConfig) {
	if cfg.Greeting != "" {
		fmt.Fprintf(sb, "Saluda así: %q\n", cfg.Greeting)
	}
	fmt.Fprintf(sb, "Zona horaria del negocio: %s.\n", cfg.Timezone)

	if len(cfg.Services) > 0 {
		fmt.Fprintf(sb, "Servicios: %s.\n", strings.Join(cfg.Services, ", "))
	}

	sb.WriteString("\nHorario de atención:\n")
	if len(cfg.OperatingHours) == 0 {
		sb.WriteString("- Sin horario definido; ofrece tomar los datos para devolver la llamada.\n")
	}
	for _, h := range cfg.OperatingHours {
		day := dayNames[h.Day]
		if day == "" {
			day = h.Day
		}
		fmt.Fprintf(sb, "- %s: %s a %s\n", day, h.Open, h.Close)
	}
}

func writeFollowUps(sb *strings.Builder, cfg domain.BehaviorConfig) {
	if len(cfg.FollowUpSchedule) == 0 {
		return
	}
	sb.WriteString("\nSeguimiento después de la cita:\n")
	for _, f := range cfg.FollowUpSchedule {
		ch := channelNames[f.Channel]
		if ch == "" {
			ch = f.Channel
		}
		fmt.Fprintf(sb, "- A las %d horas por %s: %q\n", f.OffsetHours, ch, f.Message)
	}
}
