// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	swf "github.com/saferwall/swf"
)

var (
	all     bool
	verbose bool
	tags    bool
	abc     bool
	header  bool
)

func prettyPrint(buff []byte) string {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, buff, "", "\t"); err != nil {
		log.Println("JSON parse error: ", err)
		return string(buff)
	}
	return prettyJSON.String()
}

func isDirectory(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

func dumpSWF(filename string, cmd *cobra.Command) {
	log.Printf("Processing filename %s", filename)

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		log.Printf("Error while reading file: %s, reason: %s", filename, err)
		return
	}

	f, err := swf.NewBytes(data, &swf.Options{})
	if err != nil {
		log.Printf("Error while opening file: %s, reason: %s", filename, err)
		return
	}
	defer f.Close()

	if err := f.Parse(); err != nil {
		log.Printf("Error while parsing file: %s, reason: %s", filename, err)
		return
	}

	wantHeader, _ := cmd.Flags().GetBool("header")
	if wantHeader {
		h := struct {
			Signature  swf.Signature `json:"signature"`
			Version    uint8         `json:"version"`
			FileLength uint32        `json:"file_length"`
			FrameSize  swf.Rectangle `json:"frame_size"`
			FrameRate  uint16        `json:"frame_rate"`
			FrameCount uint16        `json:"frame_count"`
		}{f.Signature, f.Version, f.FileLength, f.FrameSize, f.FrameRate, f.FrameCount}
		b, _ := json.Marshal(h)
		fmt.Println(prettyPrint(b))
	}

	wantTags, _ := cmd.Flags().GetBool("tags")
	if wantTags {
		b, _ := json.Marshal(f.Tags)
		fmt.Println(prettyPrint(b))
	}

	wantABC, _ := cmd.Flags().GetBool("abc")
	if wantABC {
		for _, tag := range f.Tags {
			if tag.DoABC != nil {
				b, _ := json.Marshal(tag.DoABC)
				fmt.Println(prettyPrint(b))
			}
		}
	}

	wantAll, _ := cmd.Flags().GetBool("all")
	if wantAll {
		b, _ := json.Marshal(f)
		fmt.Println(prettyPrint(b))
	}
}

func dump(cmd *cobra.Command, args []string) {
	filePath := args[0]

	if !isDirectory(filePath) {
		dumpSWF(filePath, cmd)
		return
	}

	var fileList []string
	filepath.Walk(filePath, func(path string, f os.FileInfo, err error) error {
		if !isDirectory(path) {
			fileList = append(fileList, path)
		}
		return nil
	})
	for _, file := range fileList {
		dumpSWF(file, cmd)
	}
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "swfdump",
		Short: "A SWF/ABC binary decoder",
		Long:  "A SWF container and ActionScript Bytecode decoder built for format analysis by Saferwall",
		Run: func(cmd *cobra.Command, args []string) {
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Long:  "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print("You are using version 0.0.1")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dumps the file",
		Long:  "Decodes the SWF header, tag stream, and any embedded ABC programs",
		Args:  cobra.MinimumNArgs(1),
		Run:   dump,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	dumpCmd.Flags().BoolVarP(&header, "header", "", false, "Dump the file header and frame metadata")
	dumpCmd.Flags().BoolVarP(&tags, "tags", "", false, "Dump the decoded tag stream")
	dumpCmd.Flags().BoolVarP(&abc, "abc", "", false, "Dump embedded ABC (DoABC) programs")
	dumpCmd.Flags().BoolVarP(&all, "all", "", false, "Dump everything")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
