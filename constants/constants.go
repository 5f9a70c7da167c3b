package constants

import (
	"os"
	"strconv"
)

func GetListenAddr() string {
	port := os.Getenv("PORT")
	if port != "" {
		return ":" + port
	}
	return ":8080"
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetDynamoRegion() string {
	region := os.Getenv("DYNAMO_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

func GetModeTable() string {
	table := os.Getenv("MODE_TABLE")
	if table != "" {
		return table
	}
	return "music-tools-modes"
}

// GetReferenceFrequency reads the A4 tuning frequency from the
// environment, falling back to 440 Hz when unset or unparseable.
func GetReferenceFrequency() float64 {
	raw := os.Getenv("A4_FREQUENCY")
	if raw == "" {
		return 440.0
	}
	hz, err := strconv.ParseFloat(raw, 64)
	if err != nil || hz <= 0 {
		return 440.0
	}
	return hz
}
