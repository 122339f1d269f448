// Package catalog expõe os casos de uso de leitura como handlers HTTP (net/http).
//
// Visão geral (camadas):
//
//   - domain: entidades User/Item, contratos de store e ErrNotFound
//   - application: casos de uso List/Get, sem net/http
//   - infra: seed embutida e stores em memória
//   - catalog (este pacote): rotas, parse do {id}, tradução de erro para status + corpo JSON
//
// Rotas do user-service:
//
//	GET /users       -> 200 [{"id":1,"name":"Alice"}, ...]
//	GET /users/{id}  -> 200 {"id":1,"name":"Alice"} | 404 {"error":"User not found"}
//
// O item-service segue o mesmo formato em /items.
package catalog
