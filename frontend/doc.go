// Package frontend é a camada de apresentação: a cada GET / busca /users e
// /items na API e renderiza as duas listas em HTML.
//
// As duas buscas são independentes. Falha em qualquer uma é logada e a lista
// correspondente sai vazia; a página sempre renderiza.
package frontend
