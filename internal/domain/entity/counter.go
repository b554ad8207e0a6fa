package entity

// Counter guarda el último consecutivo emitido por tipo de documento.
// Invariante: cada asignación incrementa CurrentVal exactamente en 1 y lo
// persiste antes de usar el número; dos asignaciones nunca devuelven el
// mismo valor.
type Counter struct {
	DocType    string // QTN | INV
	CurrentVal int64
}
