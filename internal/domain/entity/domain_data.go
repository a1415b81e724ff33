package entity

// DomainProduct es la ficha de referencia de un producto en /api/domain:
// nombre canónico más alias reconocidos (usados para mostrar y para casar
// líneas de tickets OCR en el backend).
type DomainProduct struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

// DomainData agrupa los datos de referencia del backend (/api/domain).
type DomainData struct {
	Products   []DomainProduct `json:"products"`
	Categories []string        `json:"categories"`
	Units      []string        `json:"units"`
}

// ReceiptMatch es la respuesta de /api/ocr-match para una línea de ticket:
// el texto original y los productos candidatos del dominio.
type ReceiptMatch struct {
	Original string             `json:"original"`
	Matches  []ReceiptCandidate `json:"matches"`
}

// ReceiptCandidate es un producto candidato para una línea reconocida.
type ReceiptCandidate struct {
	Name string `json:"name"`
}
