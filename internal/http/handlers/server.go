package handlers

import "github.com/rogerio-castellano/product-catalog/internal/catalog"

var catalogSvc *catalog.Service

// SetCatalog wires the catalog service the handlers delegate to.
func SetCatalog(s *catalog.Service) {
	catalogSvc = s
}
