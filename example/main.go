package main

import (
	"log"
	"os"

	"github.com/soapywu/pbxpatch/pbxpatch"
)

func main() {
	projectPath := "project.pbxproj"
	data, err := os.ReadFile(projectPath)
	if err != nil {
		log.Fatal(err)
	}

	pbxfile := pbxpatch.NewPbxFile("OralableApp/Views/HealthKitPermissionView.swift")
	fileRef := pbxpatch.GenerateUuid()
	buildFile := pbxpatch.GenerateUuid()

	patched := pbxpatch.NewPatcher("Views").Patch(string(data), pbxfile, fileRef, buildFile)

	err = os.WriteFile("new"+projectPath, []byte(patched), 0644)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("added %s (fileRef %s, buildFile %s)", pbxfile.Basename, fileRef, buildFile)
}
