// Package env lê configuração de variáveis de ambiente com valores padrão.
//
// Valores que não fazem parse caem no padrão em vez de abortar; validação de
// faixa (ex: RATE_RPS > 0) fica com quem chama.
package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DevFile = ".env.dev"

// LoadDotenv carrega os arquivos informados (ou .env.dev) sem sobrescrever
// variáveis já definidas no ambiente. Arquivo ausente não é erro.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{DevFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

func IsSet(k string) bool {
	v, ok := os.LookupEnv(k)
	return ok && v != ""
}

func String(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Int(k string, def int) int {
	v, ok := LookupInt(k)
	if !ok {
		return def
	}
	return v
}

// LookupInt diferencia "não definido/inválido" de um valor válido.
func LookupInt(k string) (int, bool) {
	v := os.Getenv(k)
	if v == "" {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

func Float(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func Bool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func Duration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Addr monta o endereço de escuta a partir de PORT.
func Addr(defPort string) string {
	return ":" + String("PORT", defPort)
}
