package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/haradama/iriscv-board/config"
)

var _ = Describe("Config", func() {
	Describe("Default", func() {
		It("should set a nonzero memory size and no trace", func() {
			cfg := config.Default()

			Expect(cfg.MemorySize).To(BeNumerically(">", 0))
			Expect(cfg.Trace).To(BeFalse())
			Expect(cfg.CSRPokes).To(BeEmpty())
		})
	})

	Describe("Load", func() {
		It("should parse memory size, trace, and CSR pokes from YAML", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "run.yml")
			contents := "memory_size: 4096\ntrace: true\ncsr_pokes:\n  - csr: 0x300\n    value: 7\n"
			Expect(os.WriteFile(path, []byte(contents), 0o644)).To(Succeed())

			cfg, err := config.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.MemorySize).To(Equal(uint32(4096)))
			Expect(cfg.Trace).To(BeTrue())
			Expect(cfg.CSRPokes).To(HaveLen(1))
			Expect(cfg.CSRPokes[0].CSR).To(Equal(uint16(0x300)))
			Expect(cfg.CSRPokes[0].Value).To(Equal(int32(7)))
		})

		It("should fall back to the default memory size when unset", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "run.yml")
			Expect(os.WriteFile(path, []byte("trace: true\n"), 0o644)).To(Succeed())

			cfg, err := config.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.MemorySize).To(Equal(config.Default().MemorySize))
		})

		It("should error when the file does not exist", func() {
			_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "missing.yml"))

			Expect(err).To(HaveOccurred())
		})
	})
})
