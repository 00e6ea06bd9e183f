package cmd

import "time"

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	CatalogDataDir    string
	SettlementURL     string
	SettlementTimeout time.Duration
	CartRetention     time.Duration
}
