// Package application contém os casos de uso de leitura do catálogo
// (listar e buscar por ID) para usuários e itens.
//
// Ele depende apenas do pacote domain e não conhece net/http.
package application
