package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pixelplot/ShootBooker/internal/copygen"
	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/pixelplot/ShootBooker/internal/geo"
	"github.com/pixelplot/ShootBooker/internal/handler/dto"
	"github.com/pixelplot/ShootBooker/internal/storage"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, *domain.CheckoutSession, error)
	Get(ctx context.Context, ref, clientEmail string) (*domain.Booking, error)
	Quote(ctx context.Context, ref, clientEmail string) (*domain.Booking, domain.CancellationQuote, error)
	Cancel(ctx context.Context, ref, clientEmail, reason string) (*domain.Booking, error)
	CancelWithPayment(ctx context.Context, ref, clientEmail string, clientFee float64, reason string) (*domain.Booking, *domain.CheckoutSession, error)
	Reschedule(ctx context.Context, input domain.RescheduleInput) (*domain.Booking, error)
	ModifyService(ctx context.Context, input domain.ModifyServiceInput) (*domain.Booking, error)
	AdminCancel(ctx context.Context, ref, reason string) (*domain.Booking, error)
	AdminReschedule(ctx context.Context, input domain.RescheduleInput) (*domain.Booking, error)
	AdminModifyService(ctx context.Context, input domain.ModifyServiceInput) (*domain.Booking, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	RedeemPoints(ctx context.Context, email string, points int) (*domain.User, error)
	AdminAdjustPoints(ctx context.Context, email string, delta int) (*domain.User, error)
}

type AddressSvc interface {
	Lookup(ctx context.Context, postcode string) (*geo.AddressResult, error)
}

type MediaSvc interface {
	UploadLink(ctx context.Context, ref string) (string, error)
}

type CopySvc interface {
	ReportCopy(ctx context.Context, in copygen.ReportInput) (string, error)
}

type Handler struct {
	bookingService BookingSvc
	userService    UserSvc
	addressService AddressSvc
	mediaService   MediaSvc
	copyService    CopySvc
	loc            *time.Location
}

func NewHandler(
	bookingService BookingSvc,
	userService UserSvc,
	addressService AddressSvc,
	mediaService MediaSvc,
	copyService CopySvc,
	loc *time.Location,
) *Handler {
	return &Handler{
		bookingService: bookingService,
		userService:    userService,
		addressService: addressService,
		mediaService:   mediaService,
		copyService:    copyService,
		loc:            loc,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	scheduledAt, err := domain.CombineDateTime(req.Date, req.Time, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date or time, expected YYYY-MM-DD and HH:MM",
		})
		return
	}

	input := domain.CreateBookingInput{
		Postcode:        req.Postcode,
		PropertyAddress: req.PropertyAddress,
		Territory:       req.Territory,
		ScheduledAt:     scheduledAt,
		Service:         req.Service,
		Bedrooms:        req.Bedrooms,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		TotalPrice:      req.TotalPrice,
		DiscountCode:    req.DiscountCode,
		DiscountAmount:  req.DiscountAmount,
		PaymentMethodID: req.PaymentMethodID,
	}

	booking, sess, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.CreateBookingResponse{Booking: dto.ToBookingResponse(booking)}
	if sess != nil {
		resp.PaymentURL = sess.URL
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.Get(c.Request.Context(), c.Param("ref"), c.Query("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancellationQuote(c *ginext.Context) {
	booking, quote, err := h.bookingService.Quote(c.Request.Context(), c.Param("ref"), c.Query("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{
		Ref:        booking.Ref,
		FeePercent: quote.FeePercent,
		Fee:        quote.FeePounds(),
		Refund:     quote.RefundPounds(),
	})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), c.Param("ref"), req.ClientEmail, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBookingWithPayment(c *ginext.Context) {
	var req dto.CancelWithPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, sess, err := h.bookingService.CancelWithPayment(
		c.Request.Context(), c.Param("ref"), req.ClientEmail, req.CancellationFee, req.Reason,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Paid bookings are cancelled on the spot with no checkout to pay.
	if sess == nil {
		c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{SessionID: sess.ID, PaymentURL: sess.URL})
}

func (h *Handler) RescheduleBooking(c *ginext.Context) {
	var req dto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	scheduledAt, err := domain.CombineDateTime(req.Date, req.Time, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date or time, expected YYYY-MM-DD and HH:MM",
		})
		return
	}

	booking, err := h.bookingService.Reschedule(c.Request.Context(), domain.RescheduleInput{
		Ref:         c.Param("ref"),
		ClientEmail: req.ClientEmail,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ModifyService(c *ginext.Context) {
	var req dto.ModifyServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.ModifyService(c.Request.Context(), domain.ModifyServiceInput{
		Ref:         c.Param("ref"),
		ClientEmail: req.ClientEmail,
		Service:     req.Service,
		TotalPrice:  req.TotalPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Admin

func (h *Handler) AdminCancelBooking(c *ginext.Context) {
	var req dto.AdminCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.AdminCancel(c.Request.Context(), c.Param("ref"), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) AdminRescheduleBooking(c *ginext.Context) {
	var req dto.AdminRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	scheduledAt, err := domain.CombineDateTime(req.Date, req.Time, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date or time, expected YYYY-MM-DD and HH:MM",
		})
		return
	}

	booking, err := h.bookingService.AdminReschedule(c.Request.Context(), domain.RescheduleInput{
		Ref:         c.Param("ref"),
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) AdminModifyService(c *ginext.Context) {
	var req dto.AdminModifyServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.AdminModifyService(c.Request.Context(), domain.ModifyServiceInput{
		Ref:        c.Param("ref"),
		Service:    req.Service,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Users

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

func (h *Handler) RedeemPoints(c *ginext.Context) {
	var req dto.RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.RedeemPoints(c.Request.Context(), req.Email, req.Points)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) AdjustPoints(c *ginext.Context) {
	var req dto.AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.AdminAdjustPoints(c.Request.Context(), req.Email, req.Delta)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Supporting services

func (h *Handler) LookupAddress(c *ginext.Context) {
	result, err := h.addressService.Lookup(c.Request.Context(), c.Param("postcode"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) UploadLink(c *ginext.Context) {
	// Ownership check rides on the booking read.
	booking, err := h.bookingService.Get(c.Request.Context(), c.Param("ref"), c.Query("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	url, err := h.mediaService.UploadLink(c.Request.Context(), booking.Ref)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadLinkResponse{URL: url})
}

func (h *Handler) ReportCopy(c *ginext.Context) {
	var req dto.ReportCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	text, err := h.copyService.ReportCopy(c.Request.Context(), copygen.ReportInput{
		PropertyAddress: req.PropertyAddress,
		Service:         req.Service,
		Bedrooms:        req.Bedrooms,
		Highlights:      req.Highlights,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportCopyResponse{Copy: text})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrFeeRequired),
		errors.Is(err, domain.ErrFeeMismatch),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInsufficientPoints):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, storage.ErrDisabled),
		errors.Is(err, copygen.ErrDisabled):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
