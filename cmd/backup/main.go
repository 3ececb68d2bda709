package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"mindgym/internal/config"
	"mindgym/internal/database"
	"mindgym/internal/repository"
	"mindgym/internal/service"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Clear existing data before import (WARNING: destructive)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create backup service
	profileRepo := repository.NewProfileRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	unlockRepo := repository.NewUnlockRepository(db)
	badgeService := service.NewBadgeService(sessionRepo, achievementRepo)
	backupService := service.NewBackupService(profileRepo, sessionRepo, achievementRepo, unlockRepo, badgeService)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(backupService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(backupService, *importInput, *importClear)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(backupService *service.BackupService, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	log.Printf("Exporting database to: %s", outputPath)
	if err := backupService.Export(file); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	// Get file size
	fileInfo, _ := os.Stat(outputPath)
	log.Printf("Export complete! File size: %.2f MB", float64(fileInfo.Size())/1024/1024)
}

func handleImport(backupService *service.BackupService, inputPath string, clearData bool) {
	file, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("Failed to open input file: %v", err)
	}
	defer file.Close()

	if clearData {
		fmt.Print("WARNING: This will delete all existing data. Type 'yes' to confirm: ")
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			log.Println("Import cancelled")
			return
		}
	}

	log.Printf("Importing database from: %s", inputPath)
	summary, err := backupService.Import(file, clearData)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import complete! Profiles: %d, Sessions: %d, Achievements: %d, Unlocks: %d",
		summary.Profiles, summary.Sessions, summary.Achievements, summary.Unlocks)
}

func printUsage() {
	fmt.Println("MindGym Database Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export database to JSON file")
	fmt.Println("  backup import [options]    Import database from JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output string    Output file path")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input string     Input file path (required)")
	fmt.Println("  -clear            Clear existing data before import")
}
