// Package snapshot contém o armazenamento e o carregamento do snapshot diário de vendas
package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-agent-api/internal/config"
	"github.com/vfg2006/sales-agent-api/pkg/utils"
)

// Store gerencia os arquivos de snapshot no diretório de dados.
// O arquivo corrente tem nome fixo; uploads são preservados com um sufixo gerado.
type Store struct {
	dataDir     string
	currentFile string
}

// NewStore cria um novo Store a partir da configuração
func NewStore(cfg config.Snapshot) *Store {
	return &Store{
		dataDir:     cfg.DataDir,
		currentFile: cfg.Filename,
	}
}

// CurrentPath retorna o caminho do snapshot corrente
func (s *Store) CurrentPath() string {
	return filepath.Join(s.dataDir, s.currentFile)
}

// Save grava um novo snapshot enviado por upload e o promove a snapshot corrente.
// Uma cópia de auditoria é mantida com um identificador gerado no nome.
func (s *Store) Save(r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return "", errors.Wrap(err, "erro ao criar o diretório de dados")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar identificador do snapshot")
	}

	archiveName := fmt.Sprintf("daily_sales_%s.csv", id)
	archivePath := filepath.Join(s.dataDir, archiveName)

	f, err := os.Create(archivePath)
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar arquivo de snapshot")
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(archivePath)
		return "", errors.Wrap(err, "erro ao gravar arquivo de snapshot")
	}

	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "erro ao fechar arquivo de snapshot")
	}

	// Promove a cópia recém-gravada a snapshot corrente
	if err := copyFile(archivePath, s.CurrentPath()); err != nil {
		return "", errors.Wrap(err, "erro ao promover snapshot corrente")
	}

	logrus.WithFields(logrus.Fields{
		"archive": archiveName,
		"current": s.currentFile,
	}).Info("Novo snapshot de vendas armazenado")

	return archiveName, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := dst + ".tmp"

	out, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}

	if err := out.Close(); err != nil {
		return err
	}

	// Substituição atômica do snapshot corrente
	return os.Rename(tmp, dst)
}
