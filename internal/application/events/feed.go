// Package events implementa el feed de cambios que sostiene el contrato de
// consistencia del sistema: escribir, notificar (o sondear) y recargar
// completo. Cada mutación publica un evento por tabla; los clientes sondean
// GET /api/changes y ante cualquier evento nuevo recargan la colección
// entera — no hay parches optimistas locales.
package events

import (
	"sync"
	"time"
)

// Tablas que emiten eventos de cambio.
const (
	TableCustomers  = "customers"
	TableServices   = "services"
	TableQuotations = "quotations"
	TableInvoices   = "invoices"
	TableUsers      = "users"
)

// ChangeEvent un cambio persistido en una tabla.
type ChangeEvent struct {
	Seq    int64     `json:"seq"`
	Table  string    `json:"table"`
	Action string    `json:"action"` // insert | update | delete
	At     time.Time `json:"at"`
}

// feedCapacity eventos retenidos; un cliente más atrasado que esto
// simplemente recarga todo (que es lo que haría de todas formas).
const feedCapacity = 256

// Feed es un log de cambios en memoria con números de secuencia crecientes.
// Seguro para uso concurrente.
type Feed struct {
	mu     sync.Mutex
	seq    int64
	events []ChangeEvent
}

// NewFeed construye el feed vacío.
func NewFeed() *Feed {
	return &Feed{events: make([]ChangeEvent, 0, feedCapacity)}
}

// Publish registra un cambio y le asigna el siguiente número de secuencia.
func (f *Feed) Publish(table, action string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	ev := ChangeEvent{Seq: f.seq, Table: table, Action: action, At: time.Now()}
	if len(f.events) == feedCapacity {
		f.events = append(f.events[:0], f.events[1:]...)
	}
	f.events = append(f.events, ev)
}

// Since devuelve los eventos con Seq > after y el último Seq emitido.
// Si after es más viejo que la ventana retenida, devuelve toda la ventana:
// al cliente le basta saber que algo cambió para recargar.
func (f *Feed) Since(after int64) ([]ChangeEvent, int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ChangeEvent, 0, 8)
	for _, ev := range f.events {
		if ev.Seq > after {
			out = append(out, ev)
		}
	}
	return out, f.seq
}
