// Command dansk-server provides an HTTP REST API for Danish sentence
// checking and translation.
//
// Usage:
//
//	VOCAB_PATH=vocabulary.json dansk-server
//	VOCAB_PATH=vocabulary.json REDIS_URL=redis://localhost:6379 OPENAI_API_KEY=... dansk-server
package main

import (
	"fmt"
	"log"
	"net/http"

	dansk "github.com/itsmemarly/Danish-language-tool"
	"github.com/itsmemarly/Danish-language-tool/cache"
	"github.com/itsmemarly/Danish-language-tool/provider"
	"github.com/itsmemarly/Danish-language-tool/vocab"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config failed: %v", err)
	}

	ds, err := vocab.LoadFile(cfg.VocabPath)
	if err != nil {
		log.Fatalf("loading vocabulary failed: %v", err)
	}
	index := dansk.NewIndex(ds)

	var opts []dansk.TranslatorOption

	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			URL: cfg.RedisURL,
			TTL: cfg.CacheTTL,
		})
		if err != nil {
			log.Fatalf("redis cache init failed: %v", err)
		}
		defer redisCache.Close()
		opts = append(opts, dansk.WithCache(redisCache))
		log.Printf("   cache   : redis (%s)\n", cfg.RedisURL)
	} else if cfg.CacheTTL > 0 {
		opts = append(opts, dansk.WithCache(cache.NewInMemoryCache(cfg.CacheTTL)))
		log.Printf("   cache   : memory (ttl=%ds)\n", cfg.CacheTTL)
	}

	if cfg.OpenAIKey != "" {
		suggester := provider.NewOpenAISuggester(provider.OpenAIConfig{
			APIKey: cfg.OpenAIKey,
			Model:  cfg.OpenAIModel,
		})
		retryable := dansk.NewRetryableSuggester(suggester, dansk.DefaultRetryConfig())
		limited := dansk.NewRateLimitedSuggester(retryable, dansk.RateLimitConfig{RequestsPerMinute: 60})
		opts = append(opts, dansk.WithSuggester(limited))
		log.Printf("   suggest : openai (model=%s)\n", cfg.OpenAIModel)
	}

	translator := dansk.NewTranslator(index, opts...)
	srv := newServer(index, translator)

	http.HandleFunc("/v1/analyze", srv.AnalyzeHandler)
	http.HandleFunc("/v1/translate", srv.TranslateHandler)
	http.HandleFunc("/v1/words", srv.WordsHandler)
	http.HandleFunc("/health", srv.HealthHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	log.Printf("dansk server listening on http://%s\n", addr)
	log.Printf("   POST http://%s/v1/analyze\n", addr)
	log.Printf("   POST http://%s/v1/translate\n", addr)
	log.Printf("   GET  http://%s/v1/words\n", addr)
	log.Printf("   GET  http://%s/health\n", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
