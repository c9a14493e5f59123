package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/vfg2006/sales-agent-api/infrastructure/snapshot"
	"github.com/vfg2006/sales-agent-api/internal/config"
	"github.com/vfg2006/sales-agent-api/pkg/apiErrors"
	"github.com/vfg2006/sales-agent-api/pkg/log"
)

// UploadSnapshot recebe um novo snapshot CSV via multipart e o promove a snapshot corrente
func UploadSnapshot(store *snapshot.Store, cfg config.Snapshot) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("snapshot: receiving upload")

		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes)

		if err := r.ParseMultipartForm(cfg.MaxUploadBytes); err != nil {
			logger.WithError(err).Warn("snapshot: invalid multipart payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Payload multipart inválido ou acima do limite", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.WithError(err).Warn("snapshot: missing file field")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' obrigatório no upload", nil)
			return
		}
		defer file.Close()

		if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
			logger.WithField("filename", header.Filename).Warn("snapshot: rejected non-CSV upload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Apenas arquivos CSV são aceitos", nil)
			return
		}

		archived, err := store.Save(file)
		if err != nil {
			logger.WithError(err).Error("snapshot: failed to persist upload")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gravar o snapshot", nil)
			return
		}

		logger.WithFields(log.Fields{
			"filename": header.Filename,
			"archived": archived,
			"size":     header.Size,
		}).Info("snapshot: upload promoted to current snapshot")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		response := map[string]any{
			"message":  "Snapshot recebido e promovido com sucesso",
			"archived": archived,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("snapshot: failed to encode upload response")
		}
	})
}
