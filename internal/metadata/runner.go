package metadata

//go:generate mockgen -source=runner.go -destination=mocks/runner_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/hazadus/go-cmusic/internal/dynarray"
)

// ErrToolNotFound возвращается, когда внешняя утилита не найдена в PATH
// или по явно указанному пути
var ErrToolNotFound = errors.New("утилита не найдена")

// Runner запускает внешнюю команду и возвращает ее стандартный вывод
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandRunner запускает команды через os/exec
type CommandRunner struct {
	logger *zap.Logger
}

// NewCommandRunner создает новый CommandRunner
func NewCommandRunner(logger *zap.Logger) *CommandRunner {
	return &CommandRunner{logger: logger}
}

// Output запускает команду и читает ее stdout через канал до конца потока.
// Аргументы передаются напрямую, без оболочки.
func (r *CommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия канала %s: %w", name, err)
	}

	if err := cmd.Start(); err != nil {
		// Путь с разделителем не ищется в PATH, отсутствие файла дает fs.ErrNotExist
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrToolNotFound, err)
		}
		return nil, fmt.Errorf("ошибка запуска %s: %w", name, err)
	}

	data, readErr := dynarray.ReadAll(stdout)
	waitErr := cmd.Wait()

	r.logger.Debug("Команда выполнена",
		zap.String("command", name),
		zap.Strings("args", args),
		zap.Int("bytes", len(data)))

	if readErr != nil {
		return data, fmt.Errorf("ошибка чтения вывода %s: %w", name, readErr)
	}
	if waitErr != nil {
		return data, fmt.Errorf("%s завершился с ошибкой: %w (stderr: %s)",
			name, waitErr, strings.TrimSpace(stderr.String()))
	}

	return data, nil
}
