package main_test

import (
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Main", func() {
	var (
		cmdArgs []string
		stdin   string
		tempDir string
		session *gexec.Session
	)

	BeforeEach(func() {
		cmdArgs = []string{}
		stdin = ""

		var err error
		tempDir, err = ioutil.TempDir("", "passguard-main")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	writeList := func(name, contents string) string {
		path := filepath.Join(tempDir, name)
		Expect(ioutil.WriteFile(path, []byte(contents), 0600)).To(Succeed())
		return path
	}

	Describe("CheckCommand", func() {
		JustBeforeEach(func() {
			finalArgs := append([]string{"check"}, cmdArgs...)
			cmd := exec.Command(cliPath, finalArgs...)

			if stdin != "" {
				cmd.Stdin = strings.NewReader(stdin)
			}

			var err error
			session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())
		})

		Context("with a strong password", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--password", "V7#mKq9$wXp2&Lf4"}
			})

			It("prints the rating and exits 0", func() {
				Eventually(session.Out).Should(gbytes.Say("Rating:"))
				Eventually(session.Out).Should(gbytes.Say("Strong"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("with a password from the common list", func() {
			BeforeEach(func() {
				wordlistPath := writeList("common.txt", "password123\nletmein\n")
				cmdArgs = []string{"--password", "password123", "--wordlist", wordlistPath}
			})

			It("reports the match and exits 3", func() {
				Eventually(session.Out).Should(gbytes.Say("found in common password list"))
				Eventually(session.Out).Should(gbytes.Say(`\[WEAK\]`))
				Eventually(session).Should(gexec.Exit(3))
			})
		})

		Context("with a dictionary word inside the password", func() {
			BeforeEach(func() {
				dictionaryPath := writeList("words.txt", "hello\nworld\n")
				cmdArgs = []string{"--password", "xyzhello123", "--dictionary", dictionaryPath}
			})

			It("reports the dictionary match", func() {
				Eventually(session.Out).Should(gbytes.Say("contains dictionary word"))
			})
		})

		Context("when given the password on stdin", func() {
			BeforeEach(func() {
				stdin = "abc\n"
			})

			It("evaluates the first line and exits 3", func() {
				Eventually(session.Out).Should(gbytes.Say("Very Weak"))
				Eventually(session).Should(gexec.Exit(3))
			})
		})

		Context("with a missing wordlist file", func() {
			BeforeEach(func() {
				cmdArgs = []string{
					"--password", "V7#mKq9$wXp2&Lf4",
					"--wordlist", filepath.Join(tempDir, "missing.txt"),
				}
			})

			It("degrades to an empty set and still evaluates", func() {
				Eventually(session.Out).Should(gbytes.Say("Rating:"))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("with a stricter minimum rating", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--password", "V7#mKq9$wXp2&Lf4", "--min-rating", "Very Strong"}
			})

			It("exits 3 below the bar", func() {
				Eventually(session).Should(gexec.Exit(3))
			})
		})

		Context("with an unknown minimum rating", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--password", "whatever", "--min-rating", "Mediocre"}
			})

			It("exits 1", func() {
				Eventually(session).Should(gexec.Exit(1))
			})
		})

		Context("with the verbose flag", func() {
			BeforeEach(func() {
				cmdArgs = []string{"--password", "V7#mKq9$wXp2&Lf4", "--verbose"}
			})

			It("shows the crack estimate", func() {
				Eventually(session.Out).Should(gbytes.Say("Crack estimate:"))
			})
		})
	})

	Describe("UpdateCommand", func() {
		var server *ghttp.Server

		BeforeEach(func() {
			server = ghttp.NewServer()
		})

		AfterEach(func() {
			server.Close()
		})

		startUpdate := func() *gexec.Session {
			cmd := exec.Command(cliPath, "update")
			cmd.Env = append(os.Environ(), "PASSGUARD_RELEASE_API="+server.URL()+"/releases/latest")

			session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())
			return session
		}

		Context("when already on the latest release", func() {
			BeforeEach(func() {
				server.AppendHandlers(ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/releases/latest"),
					ghttp.RespondWith(200, `{"tag_name": "dev", "assets": []}`),
				))
			})

			It("says so and exits 0", func() {
				session := startUpdate()
				Eventually(session.Out).Should(gbytes.Say("Already up to date."))
				Eventually(session).Should(gexec.Exit(0))
			})
		})

		Context("when the release has no asset for this OS", func() {
			BeforeEach(func() {
				server.AppendHandlers(ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/releases/latest"),
					ghttp.RespondWith(200, `{"tag_name": "v99.0.0", "assets": []}`),
				))
			})

			It("errors and exits 1", func() {
				session := startUpdate()
				Eventually(session.Err).Should(gbytes.Say("unable to update passguard for this OS"))
				Eventually(session).Should(gexec.Exit(1))
			})
		})

		Context("when the release API fails", func() {
			BeforeEach(func() {
				server.AppendHandlers(ghttp.CombineHandlers(
					ghttp.VerifyRequest("GET", "/releases/latest"),
					ghttp.RespondWith(500, ""),
				))
			})

			It("reports the status and exits 1", func() {
				session := startUpdate()
				Eventually(session.Err).Should(gbytes.Say("Error fetching latest release"))
				Eventually(session).Should(gexec.Exit(1))
			})
		})
	})

	Describe("VersionCommand", func() {
		It("prints the version", func() {
			cmd := exec.Command(cliPath, "version")

			session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())

			Eventually(session.Out).Should(gbytes.Say("dev"))
			Eventually(session).Should(gexec.Exit(0))
		})
	})
})
