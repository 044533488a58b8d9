// Package docintel provides a Go client for the docintel document
// intake and retrieval service HTTP API.
//
//	client := docintel.New("http://localhost:8080", docintel.WithAPIKey("secret"))
//	doc, _ := client.Upload(ctx, "circular.pdf", pdfBytes)
//	results, _ := client.SemanticSearch(ctx, "track safety", 10)
package docintel
