package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/adapter/speech"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/voice"
)

type voiceService interface {
	ProcessText(ctx context.Context, req dto.ProcessTextRequest) (*voice.Reply, error)
	Process(ctx context.Context, businessID uuid.UUID, filename string, audio io.Reader, language string) (*voice.Reply, error)
	Speak(ctx context.Context, req dto.SpeakRequest) (*speech.Audio, error)
	Status(ctx context.Context) voice.Status
}

// VoiceHandler serves /voice.
type VoiceHandler struct {
	svc      voiceService
	maxAudio int64
	log      *slog.Logger
}

// NewVoiceHandler creates a VoiceHandler. maxAudio bounds uploaded audio.
func NewVoiceHandler(svc voiceService, maxAudio int64, logger *slog.Logger) *VoiceHandler {
	return &VoiceHandler{svc: svc, maxAudio: maxAudio, log: logger.With("handler", "voice")}
}

// Process handles POST /voice/process, a multipart form with business_id,
// an optional language and the "audio" file.
func (h *VoiceHandler) Process(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxAudio)
	if err := r.ParseMultipartForm(h.maxAudio); err != nil {
		handleError(h.log, w, r, uploadError(err, h.maxAudio))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	q, err := dto.ParseBusinessQuery(r.Form)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("audio", "es requerido"))
		return
	}
	defer file.Close()

	reply, err := h.svc.Process(r.Context(), q.BusinessUUID(), header.Filename, file, r.FormValue("language"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// ProcessText handles POST /voice/process-text.
func (h *VoiceHandler) ProcessText(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.ProcessTextRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	reply, err := h.svc.ProcessText(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// Speak handles POST /voice/speak and answers with the audio bytes.
func (h *VoiceHandler) Speak(w http.ResponseWriter, r *http.Request) {
	req, err := dto.Decode[dto.SpeakRequest](r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	audio, err := h.svc.Speak(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", audio.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(audio.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(audio.Data) //nolint:errcheck
}

// Status handles GET /voice/status.
func (h *VoiceHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Status(r.Context()))
}
