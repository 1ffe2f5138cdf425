package main

import (
	"Go2TrafficStats/internal/config"
	"Go2TrafficStats/internal/model"
	"Go2TrafficStats/pkg/pcap"
	"bufio"
	"fmt"
	"log"
	"os"
)

func main() {
	// 1. Get pcap file path from command-line arguments
	if len(os.Args) < 2 {
		fmt.Println("Usage: pcap-counts <path_to_pcap_file>")
		os.Exit(1)
	}
	pcapFilePath := os.Args[1]

	// 2. Load configuration
	cfg, err := config.LoadOrDefault(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	period, err := cfg.CapturePeriod()
	if err != nil {
		log.Fatalf("Invalid capture config: %v", err)
	}

	pcapReader, err := pcap.NewReader(pcapFilePath)
	if err != nil {
		log.Fatalf("Failed to open pcap file: %v", err)
	}
	defer pcapReader.Close()
	log.Printf("Counting packets from '%s' in %s periods...", pcapFilePath, period)

	// 3. Emit one count-log row per period
	out := bufio.NewWriter(os.Stdout)
	rows := 0
	err = pcapReader.CountPackets(period, cfg.Capture.TimestampLayout, func(r model.Record) error {
		rows++
		_, err := fmt.Fprintf(out, "%s%s%d\n", r.Timestamp, cfg.Reader.Delimiter, r.Count)
		return err
	})
	if err != nil {
		log.Fatalf("Failed to count packets: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("Failed to write counts: %v", err)
	}
	log.Printf("Wrote %d periods.", rows)
}
