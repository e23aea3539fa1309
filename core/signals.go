package core

import "log"

type Signal any

type MessageSignal struct {
	value string
}

func (m MessageSignal) Value() string {
	return m.value
}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.ID
	err = e.Err

	return id, err
}

type SaveSignal struct {
	path string
}

func (s SaveSignal) Value() string {
	return s.path
}

type YankSignal struct {
	content string
}

func (y YankSignal) Value() string {
	return y.content
}

type PasteSignal struct {
	content string
}

func (p PasteSignal) Value() string {
	return p.content
}

type ModeChangeSignal struct {
	from, to Mode
}

func (m ModeChangeSignal) Value() (from, to Mode) {
	return m.from, m.to
}

type QuitSignal struct{}

func (s *Session) DispatchSignal(signal Signal) {
	select {
	case s.updateSignal <- signal:
	default:
		log.Printf("Channel is full, dropping %T", signal)
	}
}
