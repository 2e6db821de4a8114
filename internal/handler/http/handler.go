package http

import (
	"github.com/MKhiriev/go-vault-reconcile/internal/config"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/service"
	"github.com/MKhiriev/go-vault-reconcile/internal/validators"
	"github.com/MKhiriev/go-vault-reconcile/models"
)

// maxBodyBytes caps request bodies; a vault export rarely exceeds a few MB.
const maxBodyBytes = 32 << 20

type Handler struct {
	services  *service.Services
	validator validators.Validator

	defaultMatch models.MatchType
	sensitivity  models.Sensitivity

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. Unparsable defaults in cfg fall back
// to domain matching and normal sensitivity.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	defaultMatch, err := models.ParseMatchType(cfg.DefaultMatch)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to default match type")
	}
	sensitivity, err := models.ParseSensitivity(cfg.Sensitivity)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to normal sensitivity")
		sensitivity = models.SensitivityNormal
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		validator:    validators.NewCipherValidator(),
		defaultMatch: defaultMatch.Or(models.DefaultMatchType),
		sensitivity:  sensitivity,
		logger:       logger,
	}
}
