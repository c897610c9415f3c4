package database

type Config struct {
	// Path to the bolt file with the archive of finished games
	FilePath string `envconfig:"CRP_DB_FILE_PATH" default:"crorepati.db"`
}
