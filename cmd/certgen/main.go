package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	certFile = "server.pem"
	keyFile  = "server.key"
	caFile   = "ca.pem"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var (
		ipFlag    string
		hostsFlag string
		outDir    string
	)
	flag.StringVar(&ipFlag, "ip", "", "comma separated IP addresses of the server")
	flag.StringVar(&hostsFlag, "hosts", "localhost", "comma separated DNS names of the server")
	flag.StringVar(&outDir, "out", "cert", "output directory")
	flag.Parse()

	if !isCertMissing(outDir) {
		return errors.New("cert exists")
	}

	ips := []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback}
	if ipFlag != "" {
		ips = ips[:0]
		for _, s := range strings.Split(ipFlag, ",") {
			ip := net.ParseIP(strings.TrimSpace(s))
			if ip == nil {
				return fmt.Errorf("bad ip %q", s)
			}
			ips = append(ips, ip)
		}
	}
	var hosts []string
	for _, h := range strings.Split(hostsFlag, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}

	bundle, err := generate(ips, hosts, time.Now())
	if err != nil {
		return err
	}
	return bundle.write(outDir)
}

type bundle struct {
	caPEM   []byte
	certPEM []byte
	keyPEM  []byte
}

func generate(ips []net.IP, hosts []string, now time.Time) (bundle, error) {
	subject := pkix.Name{
		Organization: []string{"Bizness"},
		CommonName:   "Bizness local CA",
	}
	ca := &x509.Certificate{
		SerialNumber:          randomSerial(),
		Subject:               subject,
		NotBefore:             now,
		NotAfter:              now.AddDate(10, 0, 0),
		IsCA:                  true,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	caKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return bundle{}, err
	}
	caBytes, err := x509.CreateCertificate(rand.Reader, ca, ca, &caKey.PublicKey, caKey)
	if err != nil {
		return bundle{}, err
	}

	subject.CommonName = "Bizness server"
	cert := &x509.Certificate{
		SerialNumber: randomSerial(),
		Subject:      subject,
		IPAddresses:  ips,
		DNSNames:     hosts,
		NotBefore:    now,
		NotAfter:     now.AddDate(1, 0, 0),
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	certKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return bundle{}, err
	}
	certBytes, err := x509.CreateCertificate(rand.Reader, cert, ca, &certKey.PublicKey, caKey)
	if err != nil {
		return bundle{}, err
	}
	keyBytes, err := x509.MarshalECPrivateKey(certKey)
	if err != nil {
		return bundle{}, err
	}

	return bundle{
		caPEM:   pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: caBytes}),
		certPEM: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certBytes}),
		keyPEM:  pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyBytes}),
	}, nil
}

func (b bundle) write(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, caFile), b.caPEM, 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, certFile), b.certPEM, 0o600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, keyFile), b.keyPEM, 0o600)
}

func isCertMissing(dir string) bool {
	for _, name := range []string{certFile, keyFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		if errors.Is(err, os.ErrNotExist) {
			return true
		}
	}
	return false
}

func randomSerial() *big.Int {
	i, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		panic(err)
	}
	return i
}
