package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/passguard/passguard/apply"
)

const defaultReleaseAPI = "https://api.github.com/repos/passguard/passguard/releases/latest"

type UpdateCommand struct{}

// releaseAPI honors PASSGUARD_RELEASE_API so tests can point the command at
// a fake release server.
func releaseAPI() string {
	if url := os.Getenv("PASSGUARD_RELEASE_API"); url != "" {
		return url
	}
	return defaultReleaseAPI
}

func (command *UpdateCommand) Execute(args []string) error {
	type GitHubAsset struct {
		Name               string `json:"name"`
		BrowserDownloadUrl string `json:"browser_download_url"`
	}

	type GitHubRelease struct {
		TagName string        `json:"tag_name"`
		Assets  []GitHubAsset `json:"assets"`
	}

	apiResponse, err := http.Get(releaseAPI())
	if err != nil {
		return err
	}
	if apiResponse.StatusCode != 200 {
		return errors.New("Error fetching latest release: " + apiResponse.Status)
	}

	defer apiResponse.Body.Close()
	decoder := json.NewDecoder(apiResponse.Body)

	var release GitHubRelease
	err = decoder.Decode(&release)
	if err != nil {
		return err
	}

	if version == release.TagName {
		fmt.Println("Already up to date.")
		return nil
	}

	assetName := fmt.Sprintf("passguard_%s", runtime.GOOS)

	var downloadUrl string
	for _, asset := range release.Assets {
		if asset.Name == assetName {
			downloadUrl = asset.BrowserDownloadUrl
			break
		}
	}
	if downloadUrl == "" {
		return errors.New("unable to update passguard for this OS")
	}

	fmt.Println("Downloading new passguard...")
	downloadResponse, err := http.Get(downloadUrl)
	if err != nil {
		return err
	}
	if downloadResponse.StatusCode != 200 {
		return errors.New("Error downloading latest release: " + downloadResponse.Status)
	}

	defer downloadResponse.Body.Close()
	err = apply.Apply(downloadResponse.Body)
	if err != nil {
		return err
	}

	fmt.Printf("Upgraded from %s to %s.\n", version, release.TagName)

	return nil
}
