// Package dynarray содержит растущий буфер, который используется для чтения
// вывода внешних процессов до конца потока
package dynarray

import (
	"errors"
	"io"
)

// InitCap начальная емкость буфера при первом добавлении
const InitCap = 128

// readChunk размер порции, которой буфер читает поток
const readChunk = 4096

// Array растущий массив элементов произвольного типа.
// Нулевое значение готово к использованию.
type Array[T any] struct {
	items []T
}

// Append добавляет один элемент
func (a *Array[T]) Append(item T) {
	a.reserve(1)
	a.items = append(a.items, item)
}

// AppendMany добавляет несколько элементов за одно расширение
func (a *Array[T]) AppendMany(items ...T) {
	if len(items) == 0 {
		return
	}
	a.reserve(len(items))
	a.items = append(a.items, items...)
}

// Items возвращает добавленные элементы без копирования
func (a *Array[T]) Items() []T {
	return a.items
}

// Len возвращает количество элементов
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Cap возвращает текущую емкость
func (a *Array[T]) Cap() int {
	return cap(a.items)
}

// Reset очищает массив, сохраняя выделенную память
func (a *Array[T]) Reset() {
	clear(a.items)
	a.items = a.items[:0]
}

// reserve гарантирует место еще под n элементов.
// Емкость начинается с InitCap и удваивается, пока элементы не поместятся.
func (a *Array[T]) reserve(n int) {
	count := len(a.items)
	if count+n <= cap(a.items) {
		return
	}

	capacity := cap(a.items)
	if capacity == 0 {
		capacity = InitCap
	}
	for count+n > capacity {
		capacity *= 2
	}

	grown := make([]T, count, capacity)
	copy(grown, a.items)
	a.items = grown
}

// String возвращает содержимое байтового буфера как строку
func String(a *Array[byte]) string {
	return string(a.items)
}

// ReadAll читает поток до EOF в байтовый буфер.
// При ошибке чтения возвращает уже прочитанные данные вместе с ошибкой.
func ReadAll(r io.Reader) ([]byte, error) {
	var buf Array[byte]
	chunk := make([]byte, readChunk)

	for {
		n, err := r.Read(chunk)
		buf.AppendMany(chunk[:n]...)
		if errors.Is(err, io.EOF) {
			return buf.Items(), nil
		}
		if err != nil {
			return buf.Items(), err
		}
	}
}
