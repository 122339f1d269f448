// Package infra contém as implementações concretas dos contratos do pacote domain.
//
//   - Seed: dados fixos embutidos no binário (seed.yaml), decodificados com yaml.v3
//   - UserStore / ItemStore: stores em memória, somente leitura, sobre a seed
package infra
