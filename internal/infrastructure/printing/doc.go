// Package printing renders statutory reports (MLWF statement, bonus register,
// attendance reports) as letterhead PDFs.
//
// Reports are built as a Document, turned into HTML by the report template,
// then printed to A4 PDF by a PDFRenderer. ChromedpRenderer drives headless
// Chrome through the DevTools protocol:
//
//	renderer, err := NewChromedpRenderer(&ChromedpConfig{NoSandbox: true})
//	if err != nil {
//	    return err
//	}
//	defer renderer.Close()
//
//	printer := NewReportPrinter(renderer, company)
//	pdf, err := printer.Print(ctx, doc)
package printing
