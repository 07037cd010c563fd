package constants

import "os"

func GetInputDir() string {
	path := os.Getenv("INPUT_XML_PATH")
	if path != "" {
		return path
	}
	return "./input-xml"
}

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_XML_PATH")
	if path != "" {
		return path
	}
	return "./output-xml"
}

func GetFingeringDbEndpoint() string {
	endpoint := os.Getenv("FINGERING_DB_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

const FingeringTable = "easyscore-fingerings"

// ticks per quarter note in exported preview files
const PreviewResolution = 960

const SimplifiedSuffix = "_simplified"
