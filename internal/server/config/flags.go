package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/flagx"
)

var serverFlags = []string{"-a", "-d", "-s", "-t", "-r", "-k", "-f", "-u", "-p", "-b", "-g", "-e", "-o", "-m"}

// parseFlags overlays command-line flags onto config. Token lifetimes are
// given in minutes.
//
//	-a  HTTP listen address          -k  storage backend (s3|local)
//	-d  PostgreSQL DSN               -f  upload directory (local backend)
//	-s  JWT secret                   -u -p -b -g -e  S3 user, password, bucket, region, endpoint
//	-t  access token minutes         -o  CORS allowed origin
//	-r  refresh token minutes        -m  max upload size, MB
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh token validity (in minutes)")

	fs.StringVar(&config.StorageBackend, "k", config.StorageBackend, "photo storage backend: s3 or local")
	fs.StringVar(&config.UploadDir, "f", config.UploadDir, "photo upload directory for the local backend")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.CORSAllowedOrigin, "o", config.CORSAllowedOrigin, "CORS allowed origin")
	fs.IntVar(&config.MaxUploadSizeMB, "m", config.MaxUploadSizeMB, "max photo upload size (in MB)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
}
