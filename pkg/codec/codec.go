package codec

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// Zlib comprime y descomprime payloads arbitrarios (imágenes de producto) con zlib.
// No tiene estado: es seguro para uso concurrente sin sincronización.
type Zlib struct{}

// NewZlib construye el códec.
func NewZlib() *Zlib {
	return &Zlib{}
}

// Compress comprime data con zlib. Determinista y sin pérdida; la entrada vacía es válida.
func (Zlib) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return nil, fmt.Errorf("zlib: escribir: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zlib: cerrar stream: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress es el inverso de Compress. Falla si data no es un stream zlib válido.
func (Zlib) Decompress(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib: abrir stream: %w", err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, fmt.Errorf("zlib: leer stream: %w", err)
	}
	return buf.Bytes(), nil
}
