package submit_booking_proof

import (
	"errors"
	"net/http"

	"github.com/daleelashes/booking-service/internal/api/handlers"
	createBookingHandler "github.com/daleelashes/booking-service/internal/api/handlers/create_booking"
	"github.com/daleelashes/booking-service/pkg/uploads"
)

const (
	msgInvalidForm       = "некорректная multipart форма"
	msgMissingProof      = "файл подтверждения оплаты обязателен"
	msgFileTooLarge      = "файл слишком большой (максимум 5 МБ)"
	msgUnsupportedType   = "недопустимый тип файла, ожидается JPEG, PNG или WebP"
	msgInvalidDateOrTime = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
)

// лимит на разбор всей формы: файл плюс текстовые поля
const maxFormMemory = 6 << 20

type Handler struct {
	useCase CreateBookingUseCase
	saver   ProofSaver
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, saver ProofSaver, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		saver:   saver,
		logger:  logger,
	}
}

// Handle POST /api/bookings/submit-with-proof
// Multipart форма: поле proof (JPEG/PNG/WebP) плюс поля бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		h.logger.Warn("POST /bookings/submit-with-proof - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	file, fileHeader, err := r.FormFile("proof")
	if err != nil {
		h.logger.Warn("POST /bookings/submit-with-proof - Missing proof file: %v", err)
		handlers.RespondBadRequest(w, msgMissingProof)
		return
	}
	defer file.Close()

	proofPath, err := h.saver.Save(fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrFileTooLarge):
			h.logger.Warn("POST /bookings/submit-with-proof - File too large: size=%d", fileHeader.Size)
			handlers.RespondBadRequest(w, msgFileTooLarge)

		case errors.Is(err, uploads.ErrUnsupportedType):
			h.logger.Warn("POST /bookings/submit-with-proof - Unsupported file type: name=%s", fileHeader.Filename)
			handlers.RespondBadRequest(w, msgUnsupportedType)

		default:
			h.logger.Error("POST /bookings/submit-with-proof - Failed to save proof: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	req := createBookingHandler.CreateBookingRequest{
		ServiceSlug: r.FormValue("serviceId"),
		Date:        r.FormValue("date"),
		StartTime:   r.FormValue("startTime"),
		FirstName:   r.FormValue("firstName"),
		LastName:    r.FormValue("lastName"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		Notes:       r.FormValue("notes"),
	}

	useCaseReq, err := req.ToUseCaseRequest(&proofPath)
	if err != nil {
		h.logger.Warn("POST /bookings/submit-with-proof - Failed to parse date/time: %v", err)
		h.removeProof(proofPath)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// бронирование не создано, файл подтверждения больше не нужен
		h.removeProof(proofPath)
		createBookingHandler.RespondUseCaseError(w, h.logger, "POST /bookings/submit-with-proof", &req, err)
		return
	}

	response := createBookingHandler.FromUseCaseResponse(result, &proofPath)

	h.logger.Info("POST /bookings/submit-with-proof - Booking created with proof: booking_id=%d, service=%s, proof=%s",
		result.ID, req.ServiceSlug, proofPath)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

func (h *Handler) removeProof(proofPath string) {
	if err := h.saver.Remove(proofPath); err != nil {
		h.logger.Warn("POST /bookings/submit-with-proof - Failed to remove orphaned proof %s: %v", proofPath, err)
	}
}
