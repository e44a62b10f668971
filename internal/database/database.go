package database

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// --- Client globali ---
var (
	Redis   *redis.Client
	Scylla  *gocql.Session
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
)

// ConnectDatabases inizializza i collegamenti. Redis e Scylla sono richiesti,
// Elasticsearch e MinIO sono opzionali (i relativi endpoint degradano a 503).
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectRedis(ctx)
	connectScylla()
	connectElastic()
	connectMinIO(ctx)

	log.Println("✅ Collegamenti alle basi dati pronti")
}

// =============================================
// REDIS (record per-utente: carrello, storico, riscatti, cooldown)
// =============================================
func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Errore connessione Redis:", err)
	}
	log.Println("✅ Connesso a Redis")
}

// =============================================
// SCYLLA DB (utenti, registro globale ordini, audit)
// =============================================
func connectScylla() {
	hosts := strings.Split(os.Getenv("SCYLLA_HOSTS"), ",")
	keyspace := os.Getenv("SCYLLA_KEYSPACE")
	if keyspace == "" {
		keyspace = "pizzamia"
	}

	cluster := gocql.NewCluster(hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 10
	cluster.ReconnectInterval = 1 * time.Second
	if username := os.Getenv("SCYLLA_USERNAME"); username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: username,
			Password: os.Getenv("SCYLLA_PASSWORD"),
		}
	}
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	// Nota: le tabelle vanno create con scripts/scylladb_init.cql
	session, err := cluster.CreateSession()
	if err != nil {
		log.Fatalf("❌ Errore connessione ScyllaDB: %v", err)
	}
	Scylla = session
	log.Printf("✅ Connesso a ScyllaDB (keyspace '%s')", keyspace)
}

// =============================================
// ELASTICSEARCH (ricerca menu, opzionale)
// =============================================
func connectElastic() {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		log.Println("⚠️ ELASTIC_URL non configurato — ricerca menu disattivata")
		return
	}

	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Println("⚠️ Errore creazione client Elasticsearch:", err)
		return
	}

	res, err := client.Info()
	if err != nil {
		log.Println("⚠️ Elasticsearch non raggiungibile:", err)
		return
	}
	defer res.Body.Close()

	Elastic = client
	log.Println("✅ Connesso a Elasticsearch")
}

// =============================================
// MINIO (immagini del menu, opzionale)
// =============================================
func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT non configurato — immagini menu disattivate")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️ Errore connessione MinIO:", err)
		return
	}

	bucketName := Bucket()
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Println("⚠️ Errore verifica bucket MinIO:", err)
		return
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️ Errore creazione bucket MinIO:", err)
			return
		}
		log.Println("🪣 Bucket creato:", bucketName)
	} else {
		log.Println("🪣 Bucket MinIO già presente:", bucketName)
	}

	MinIO = client
	log.Println("✅ Connesso a MinIO:", endpoint)
}

// Bucket restituisce il nome del bucket immagini.
func Bucket() string {
	if b := os.Getenv("MINIO_BUCKET"); b != "" {
		return b
	}
	return "pizzamia-images"
}
