package player

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output абстрагирует звуковое устройство
type Output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// SpeakerOutput выводит звук через beep/speaker
type SpeakerOutput struct{}

// Init инициализирует динамики
func (SpeakerOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	return speaker.Init(sampleRate, bufferSize)
}

// Play добавляет потоки в микшер
func (SpeakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

// Clear удаляет все потоки из микшера
func (SpeakerOutput) Clear() { speaker.Clear() }

// Lock блокирует микшер
func (SpeakerOutput) Lock() { speaker.Lock() }

// Unlock разблокирует микшер
func (SpeakerOutput) Unlock() { speaker.Unlock() }
