// Package gateway dá à página e às APIs uma única origem.
//
// Fluxo de uma requisição:
//
//  1. Limite de requisições em voo (semáforo); sem vaga -> 503
//  2. Rate limit por cliente e upstream (token bucket, x/time/rate); estourou -> 429 + Retry-After
//  3. Roteamento por prefixo: /users -> user-service, /items -> item-service, resto -> frontend
//  4. Upstream fora do ar -> 502
//
// As decisões de rate limit são contadas pela rota casada (conjunto fixo de
// rótulos), em memória ou no Redis.
// A configuração vem de variáveis de ambiente do binário cmd/gateway.
package gateway
