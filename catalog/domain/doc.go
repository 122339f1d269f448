// Package domain define as entidades do catálogo (usuários e itens) e os
// contratos de leitura que as camadas de cima usam.
//
// Este pacote não depende de net/http nem de implementações concretas.
package domain
