package snapshot

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSnapshotNotFound indica que o arquivo de snapshot não existe no diretório de dados
	ErrSnapshotNotFound = errors.New("arquivo de snapshot não encontrado")

	// ErrSnapshotEmpty indica que o snapshot não contém nenhuma linha de dados válida
	ErrSnapshotEmpty = errors.New("snapshot não contém linhas de dados")
)

// MissingColumnError indica que uma coluna obrigatória está ausente no cabeçalho do snapshot
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("coluna obrigatória ausente no snapshot: %s", e.Column)
}
