package player

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"go.uber.org/zap/zaptest"
)

const testRate = beep.SampleRate(1000)

// fakeOutput заменяет звуковое устройство в тестах
type fakeOutput struct {
	mu        sync.Mutex
	initCalls int
	initRate  beep.SampleRate
	initErr   error
	played    []beep.Streamer
	clears    int
}

func (o *fakeOutput) Init(sampleRate beep.SampleRate, _ int) error {
	o.initCalls++
	o.initRate = sampleRate
	return o.initErr
}

func (o *fakeOutput) Play(s ...beep.Streamer) { o.played = append(o.played, s...) }
func (o *fakeOutput) Clear()                  { o.clears++; o.played = nil }
func (o *fakeOutput) Lock()                   { o.mu.Lock() }
func (o *fakeOutput) Unlock()                 { o.mu.Unlock() }

// drain вычитывает последний поток из микшера, как это делают динамики
func (o *fakeOutput) drain(t *testing.T, samples int) {
	t.Helper()
	if len(o.played) == 0 {
		t.Fatal("В микшере нет потоков")
	}
	s := o.played[len(o.played)-1]
	buf := make([][2]float64, 64)
	for read := 0; read < samples; {
		n, ok := s.Stream(buf)
		read += n
		if !ok {
			return
		}
	}
}

// tone тестовый поток заданной длины
type tone struct {
	pos    int
	length int
	closed bool
}

func (s *tone) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.length {
		return 0, false
	}
	n := min(len(samples), s.length-s.pos)
	for i := 0; i < n; i++ {
		samples[i] = [2]float64{0.5, 0.5}
	}
	s.pos += n
	return n, true
}

func (s *tone) Err() error    { return nil }
func (s *tone) Len() int      { return s.length }
func (s *tone) Position() int { return s.pos }
func (s *tone) Close() error  { s.closed = true; return nil }

func (s *tone) Seek(p int) error {
	if p < 0 || p > s.length {
		return errors.New("seek out of range")
	}
	s.pos = p
	return nil
}

func newTestPlayer(t *testing.T, opts Options) (*Player, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	return NewPlayer(out, opts, zaptest.NewLogger(t)), out
}

func loadTone(t *testing.T, p *Player, seconds int) *tone {
	t.Helper()
	s := &tone{length: int(testRate) * seconds}
	format := beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}
	if err := p.LoadStream("test.mp3", s, format); err != nil {
		t.Fatalf("Ошибка загрузки потока: %v", err)
	}
	return s
}

func TestLoadStartsPaused(t *testing.T) {
	p, out := newTestPlayer(t, Options{Volume: 0.5})
	defer p.Close()

	loadTone(t, p, 10)

	if p.IsPlaying() {
		t.Error("Загруженный трек должен быть на паузе")
	}
	if out.initCalls != 1 || out.initRate != testRate {
		t.Errorf("Динамики должны быть инициализированы один раз с частотой %d", testRate)
	}
	if len(out.played) != 1 {
		t.Errorf("Ожидался один поток в микшере, получено %d", len(out.played))
	}
	if p.Length() != 10*time.Second {
		t.Errorf("Ожидалась длительность 10s, получено %s", p.Length())
	}
	if p.Path() != "test.mp3" {
		t.Errorf("Ожидался путь test.mp3, получено %s", p.Path())
	}
}

func TestToggle(t *testing.T) {
	p, _ := newTestPlayer(t, Options{})
	defer p.Close()
	loadTone(t, p, 10)

	if err := p.Toggle(); err != nil {
		t.Fatalf("Ошибка переключения: %v", err)
	}
	if !p.IsPlaying() {
		t.Error("После переключения трек должен воспроизводиться")
	}

	if err := p.Toggle(); err != nil {
		t.Fatalf("Ошибка переключения: %v", err)
	}
	if p.IsPlaying() {
		t.Error("После повторного переключения трек должен быть на паузе")
	}
}

func TestNotLoaded(t *testing.T) {
	p, _ := newTestPlayer(t, Options{})
	defer p.Close()

	if err := p.Play(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Ожидалась ErrNotLoaded, получено %v", err)
	}
	if err := p.Toggle(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Ожидалась ErrNotLoaded, получено %v", err)
	}
	if err := p.Seek(time.Second); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Ожидалась ErrNotLoaded, получено %v", err)
	}

	// Без трека плеер отвечает нулями и не паникует
	p.Pause()
	if p.Position() != 0 || p.Length() != 0 || p.IsPlaying() {
		t.Error("Пустой плеер должен возвращать нулевое состояние")
	}
}

func TestSeekClamps(t *testing.T) {
	p, _ := newTestPlayer(t, Options{})
	defer p.Close()
	s := loadTone(t, p, 10)

	tests := []struct {
		name     string
		seek     func() error
		expected time.Duration
	}{
		{"middle", func() error { return p.Seek(4 * time.Second) }, 4 * time.Second},
		{"forward", func() error { return p.SeekBy(5 * time.Second) }, 9 * time.Second},
		{"past end", func() error { return p.SeekBy(5 * time.Second) }, 10 * time.Second},
		{"backward", func() error { return p.SeekBy(-5 * time.Second) }, 5 * time.Second},
		{"before start", func() error { return p.Seek(-3 * time.Second) }, 0},
	}

	for _, tt := range tests {
		if err := tt.seek(); err != nil {
			t.Fatalf("%s: ошибка перемотки: %v", tt.name, err)
		}
		if got := p.Position(); got != tt.expected {
			t.Errorf("%s: ожидалась позиция %s, получено %s", tt.name, tt.expected, got)
		}
		if s.pos < 0 || s.pos > s.length {
			t.Errorf("%s: позиция потока вне диапазона: %d", tt.name, s.pos)
		}
	}
}

func TestPlaybackFinishedWithoutLoop(t *testing.T) {
	p, out := newTestPlayer(t, Options{Loop: false, Volume: 1})
	defer p.Close()
	loadTone(t, p, 1)

	if err := p.Play(); err != nil {
		t.Fatalf("Ошибка запуска: %v", err)
	}
	out.drain(t, 5000)

	select {
	case <-p.Done():
	default:
		t.Fatal("Ожидался сигнал завершения воспроизведения")
	}

	if p.IsPlaying() {
		t.Error("После окончания трек не должен воспроизводиться")
	}

	// Повторный запуск начинает трек сначала
	if err := p.Play(); err != nil {
		t.Fatalf("Ошибка повторного запуска: %v", err)
	}
	if p.Position() != 0 {
		t.Errorf("Ожидалась позиция 0 после перезапуска, получено %s", p.Position())
	}
	if !p.IsPlaying() {
		t.Error("После перезапуска трек должен воспроизводиться")
	}
	if len(out.played) != 2 {
		t.Errorf("Цепочка должна вернуться в микшер, потоков: %d", len(out.played))
	}
}

func TestSeekAfterFinishKeepsPaused(t *testing.T) {
	p, out := newTestPlayer(t, Options{})
	defer p.Close()
	loadTone(t, p, 2)

	_ = p.Play()
	out.drain(t, 5000)

	if err := p.Seek(time.Second); err != nil {
		t.Fatalf("Ошибка перемотки: %v", err)
	}
	if p.IsPlaying() {
		t.Error("После перемотки закончившегося трека он должен остаться на паузе")
	}
	if p.Position() != time.Second {
		t.Errorf("Ожидалась позиция 1s, получено %s", p.Position())
	}
	if len(out.played) != 2 {
		t.Errorf("Цепочка должна вернуться в микшер, потоков: %d", len(out.played))
	}
}

func TestLoopWraps(t *testing.T) {
	p, out := newTestPlayer(t, Options{Loop: true, Volume: 0.5})
	defer p.Close()
	loadTone(t, p, 1)

	_ = p.Play()
	out.drain(t, 2500)

	select {
	case <-p.Done():
		t.Error("При повторе сигнал завершения не ожидается")
	default:
	}

	if !p.IsPlaying() {
		t.Error("При повторе трек должен продолжать воспроизводиться")
	}
	if pos := p.Position(); pos >= p.Length() {
		t.Errorf("Позиция должна вернуться в начало трека, получено %s", pos)
	}
}

func TestVolume(t *testing.T) {
	p, _ := newTestPlayer(t, Options{Volume: 0.5})
	defer p.Close()
	loadTone(t, p, 1)

	if p.Volume() != 0.5 {
		t.Errorf("Ожидалась громкость 0.5, получено %.2f", p.Volume())
	}

	if err := p.SetVolume(0); err != nil {
		t.Fatalf("Ошибка установки громкости: %v", err)
	}
	if !p.volume.Silent {
		t.Error("Нулевая громкость должна включать тишину")
	}

	if err := p.SetVolume(1); err != nil {
		t.Fatalf("Ошибка установки громкости: %v", err)
	}
	if p.volume.Silent || p.volume.Volume != 1 {
		t.Errorf("Ожидалась громкость 1 без тишины, получено %.2f silent=%v", p.volume.Volume, p.volume.Silent)
	}

	if err := p.SetVolume(1.5); !errors.Is(err, ErrInvalidVolume) {
		t.Errorf("Ожидалась ErrInvalidVolume, получено %v", err)
	}
}

func TestStatus(t *testing.T) {
	p, _ := newTestPlayer(t, Options{Volume: 0.3})
	defer p.Close()
	loadTone(t, p, 4)

	_ = p.Seek(time.Second)
	_ = p.Play()

	status := p.Status()
	if status.Current != time.Second || status.Total != 4*time.Second {
		t.Errorf("Неожиданная позиция в статусе: %s / %s", status.Current, status.Total)
	}
	if !status.IsPlaying {
		t.Error("Статус должен показывать воспроизведение")
	}
	if status.Volume != 0.3 {
		t.Errorf("Ожидалась громкость 0.3, получено %.2f", status.Volume)
	}
}

func TestReloadAndClose(t *testing.T) {
	p, out := newTestPlayer(t, Options{})
	first := loadTone(t, p, 1)

	// Второй трек с другой частотой передискретизируется
	second := &tone{length: 44100}
	if err := p.LoadStream("other.wav", second, beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}); err != nil {
		t.Fatalf("Ошибка загрузки второго потока: %v", err)
	}

	if !first.closed {
		t.Error("Предыдущий поток должен быть закрыт")
	}
	if out.initCalls != 1 {
		t.Errorf("Динамики должны инициализироваться один раз, вызовов: %d", out.initCalls)
	}
	if p.Length() != time.Second {
		t.Errorf("Ожидалась длительность 1s, получено %s", p.Length())
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Ошибка закрытия: %v", err)
	}
	if !second.closed {
		t.Error("Поток должен быть закрыт после Close")
	}
	if out.clears != 2 {
		t.Errorf("Ожидалось две очистки микшера, получено %d", out.clears)
	}
	if p.Path() != "" {
		t.Error("После Close путь должен быть пустым")
	}
}

func TestSpeakerInitError(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no audio device")}
	p := NewPlayer(out, Options{}, zaptest.NewLogger(t))
	s := &tone{length: 10}

	err := p.LoadStream("x.mp3", s, beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2})

	var playerErr *Error
	if !errors.As(err, &playerErr) || playerErr.Op != "speaker_init" {
		t.Fatalf("Ожидалась ошибка speaker_init, получено %v", err)
	}
	if !s.closed {
		t.Error("Поток должен быть закрыт при ошибке инициализации")
	}
}
