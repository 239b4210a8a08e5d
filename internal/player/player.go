// Package player содержит компоненты для управления воспроизведением аудио
package player

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"go.uber.org/zap"
)

// resampleQuality качество передискретизации для файлов с другой частотой
const resampleQuality = 4

// Status представляет текущий статус плеера
type Status struct {
	Current   time.Duration // Текущая позиция
	Total     time.Duration // Общая продолжительность
	IsPlaying bool          // Воспроизводится ли трек
	Volume    float64       // Громкость от 0 до 1
}

// Options настройки плеера
type Options struct {
	Loop   bool    // Начинать трек заново по окончании
	Volume float64 // Начальная громкость от 0 до 1
}

// Player управляет воспроизведением одного трека
type Player struct {
	output Output
	logger *zap.Logger
	opts   Options

	// Сигнал завершения воспроизведения
	doneChan chan struct{}

	// Внутреннее состояние
	mutex         sync.Mutex
	isInitialized bool
	sampleRate    beep.SampleRate // Частота, с которой инициализированы динамики
	level         float64
	ended         atomic.Bool // Выставляется из горутины микшера
	path          string
	length        time.Duration

	// Компоненты для воспроизведения
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
}

// NewPlayer создает новый экземпляр плеера
func NewPlayer(output Output, opts Options, logger *zap.Logger) *Player {
	return &Player{
		output:   output,
		logger:   logger,
		opts:     opts,
		level:    opts.Volume,
		doneChan: make(chan struct{}, 1),
	}
}

// Done возвращает канал, в который приходит сигнал о завершении трека.
// При включенном повторе сигнал не приходит.
func (p *Player) Done() <-chan struct{} {
	return p.doneChan
}

// Load декодирует файл и готовит его к воспроизведению на паузе
func (p *Player) Load(filePath string) error {
	streamer, format, err := DecodeFile(filePath)
	if err != nil {
		return err
	}
	return p.LoadStream(filePath, streamer, format)
}

// LoadStream готовит уже декодированный поток к воспроизведению на паузе
func (p *Player) LoadStream(name string, streamer beep.StreamSeekCloser, format beep.Format) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Останавливаем текущий трек, если есть
	p.unloadInternal()

	// Инициализируем динамики (только один раз)
	if !p.isInitialized {
		if err := p.output.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			return &Error{Op: "speaker_init", Path: name, Err: err}
		}
		p.sampleRate = format.SampleRate
		p.isInitialized = true
	}

	var source beep.Streamer = streamer
	if p.opts.Loop {
		source = beep.Loop(-1, streamer)
	}
	if format.SampleRate != p.sampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, p.sampleRate, source)
	}

	p.streamer = streamer
	p.format = format
	p.path = name
	p.length = format.SampleRate.D(streamer.Len())
	p.ctrl = &beep.Ctrl{Streamer: source, Paused: true}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.applyVolume()
	p.ended.Store(false)
	p.enqueue()

	p.logger.Info("Трек загружен",
		zap.String("path", name),
		zap.Duration("length", p.length),
		zap.Int("sample_rate", int(format.SampleRate)))

	return nil
}

// Play запускает или возобновляет воспроизведение.
// После окончания трека воспроизведение начинается сначала.
func (p *Player) Play() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.playInternal()
}

// Pause ставит воспроизведение на паузу
func (p *Player) Pause() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.pauseInternal()
}

// Toggle переключает паузу и воспроизведение
func (p *Player) Toggle() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.isPlaying() {
		p.pauseInternal()
		return nil
	}
	return p.playInternal()
}

// IsPlaying возвращает true, если трек воспроизводится
func (p *Player) IsPlaying() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.isPlaying()
}

// Position возвращает текущую позицию
func (p *Player) Position() time.Duration {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.position()
}

// Length возвращает продолжительность трека
func (p *Player) Length() time.Duration {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.length
}

// Seek перематывает на позицию, ограниченную диапазоном [0, Length]
func (p *Player) Seek(pos time.Duration) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.seekInternal(pos)
}

// SeekBy перематывает относительно текущей позиции
func (p *Player) SeekBy(delta time.Duration) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.seekInternal(p.position() + delta)
}

// Volume возвращает громкость от 0 до 1
func (p *Player) Volume() float64 {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.level
}

// SetVolume устанавливает громкость от 0 до 1
func (p *Player) SetVolume(level float64) error {
	if level < 0 || level > 1 {
		return ErrInvalidVolume
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.level = level
	p.applyVolume()
	return nil
}

// Status возвращает снимок состояния плеера
func (p *Player) Status() Status {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return Status{
		Current:   p.position(),
		Total:     p.length,
		IsPlaying: p.isPlaying(),
		Volume:    p.level,
	}
}

// Path возвращает путь загруженного трека
func (p *Player) Path() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.path
}

// Close останавливает воспроизведение и освобождает ресурсы
func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.unloadInternal()
	return nil
}

// Методы ниже должны вызываться под мьютексом

func (p *Player) isPlaying() bool {
	return p.ctrl != nil && !p.ctrl.Paused && !p.ended.Load()
}

func (p *Player) position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	p.output.Lock()
	pos := p.streamer.Position()
	p.output.Unlock()
	return p.format.SampleRate.D(pos)
}

func (p *Player) playInternal() error {
	if p.ctrl == nil {
		return ErrNotLoaded
	}

	if p.ended.Load() {
		if err := p.seekSamples(0); err != nil {
			return err
		}
		p.ended.Store(false)
		p.enqueue()
	}

	p.output.Lock()
	p.ctrl.Paused = false
	p.output.Unlock()
	return nil
}

func (p *Player) pauseInternal() {
	if p.ctrl == nil {
		return
	}
	p.output.Lock()
	p.ctrl.Paused = true
	p.output.Unlock()
}

func (p *Player) seekInternal(pos time.Duration) error {
	if p.streamer == nil {
		return ErrNotLoaded
	}

	if pos < 0 {
		pos = 0
	} else if pos > p.length {
		pos = p.length
	}

	n := p.format.SampleRate.N(pos)
	if n > p.streamer.Len() {
		n = p.streamer.Len()
	}
	if err := p.seekSamples(n); err != nil {
		return err
	}

	// Перемотка после окончания возвращает трек в микшер на паузе
	if p.ended.Load() && n < p.streamer.Len() {
		p.output.Lock()
		p.ctrl.Paused = true
		p.output.Unlock()
		p.ended.Store(false)
		p.enqueue()
	}
	return nil
}

func (p *Player) seekSamples(n int) error {
	p.output.Lock()
	err := p.streamer.Seek(n)
	p.output.Unlock()
	if err != nil {
		return &Error{Op: "seek", Path: p.path, Err: err}
	}
	return nil
}

func (p *Player) applyVolume() {
	if p.volume == nil {
		return
	}
	p.output.Lock()
	p.volume.Volume = p.level*2 - 1
	p.volume.Silent = p.level == 0
	p.output.Unlock()
}

// enqueue отправляет цепочку потоков в микшер
func (p *Player) enqueue() {
	p.output.Play(beep.Seq(p.volume, beep.Callback(p.finished)))
}

// finished вызывается из горутины микшера под его блокировкой
func (p *Player) finished() {
	p.ended.Store(true)
	select {
	case p.doneChan <- struct{}{}:
	default:
	}
}

func (p *Player) unloadInternal() {
	if p.ctrl != nil {
		p.output.Clear()
		p.ctrl = nil
		p.volume = nil
	}

	if p.streamer != nil {
		if err := p.streamer.Close(); err != nil {
			p.logger.Warn("Ошибка закрытия потока", zap.String("path", p.path), zap.Error(err))
		}
		p.streamer = nil
	}

	p.path = ""
	p.length = 0
	p.ended.Store(false)
}
