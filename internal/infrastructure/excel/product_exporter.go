package excel

import (
	"bytes"
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/Agslz/inventory-control-api-rest/internal/application/dto"
)

// SheetName hoja donde se vuelca el listado de productos.
const SheetName = "Productos"

var headers = []string{"ID", "Nombre", "Precio", "Cantidad", "Imagen (bytes)", "Categoría"}

// ProductExporter genera un archivo xlsx con el listado de productos.
// De la imagen solo se exporta su tamaño en bytes, no el contenido.
type ProductExporter struct{}

// NewProductExporter construye el exportador.
func NewProductExporter() *ProductExporter {
	return &ProductExporter{}
}

// Export escribe una fila de cabecera y una fila por producto y devuelve los
// bytes del xlsx listo para enviarse como adjunto.
func (ProductExporter) Export(products []dto.ProductResponse) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SheetName)

	for col, h := range headers {
		f.SetCellValue(SheetName, cell(col, 1), h)
	}

	for i, p := range products {
		row := i + 2 // la fila 1 es la cabecera
		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}
		f.SetCellValue(SheetName, cell(0, row), p.ID)
		f.SetCellValue(SheetName, cell(1, row), p.Name)
		f.SetCellValue(SheetName, cell(2, row), p.Price.String())
		f.SetCellValue(SheetName, cell(3, row), p.Account)
		f.SetCellValue(SheetName, cell(4, row), len(p.Picture))
		f.SetCellValue(SheetName, cell(5, row), categoryName)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// cell devuelve la coordenada (ej. "B3") para una columna 0..5 y fila 1-based.
func cell(col, row int) string {
	return fmt.Sprintf("%c%d", rune('A'+col), row)
}
