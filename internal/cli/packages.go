package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bebco_infra/components/packages"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrPackagesMissing makes `packages verify` exit non-zero.
var ErrPackagesMissing = errors.New("lambda packages missing")

type PackagesCmd struct {
	List     PackagesListCmd     `cmd:"" help:"List manifest entries"`
	Verify   PackagesVerifyCmd   `cmd:"" help:"Check every manifest entry has a zip under dist/lambda-packages"`
	Download PackagesDownloadCmd `cmd:"" help:"Fetch missing zips from the lambda-deployments bucket"`
}

type PackagesListCmd struct {
	Prefix string `help:"Only entries whose name starts with this prefix"`
}

func (c *PackagesListCmd) Run(env *Env) error {
	configs, err := env.Packages.ByPrefix(c.Prefix)
	if err != nil {
		return err
	}
	t := Table{Headers: []string{"NAME", "RUNTIME", "HANDLER", "TIMEOUT", "MEMORY", "LAYERS", "PRESENT"}, Data: configs}
	for _, cfg := range configs {
		t.Rows = append(t.Rows, []string{
			cfg.Name,
			cfg.Runtime,
			cfg.Handler,
			strconv.Itoa(cfg.Timeout),
			strconv.Itoa(cfg.MemorySize),
			strconv.Itoa(len(cfg.Layers)),
			strconv.FormatBool(env.Packages.PackageExists(cfg.Name)),
		})
	}
	return env.Print(t)
}

type PackagesVerifyCmd struct{}

func (c *PackagesVerifyCmd) Run(env *Env) error {
	missing, err := env.Packages.Missing()
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		fmt.Fprintln(env.Out, "all lambda packages present")
		return nil
	}
	for _, name := range missing {
		fmt.Fprintln(env.Out, env.Packages.PackagePath(name))
	}
	return fmt.Errorf("%w: %d of the manifest entries", ErrPackagesMissing, len(missing))
}

type PackagesDownloadCmd struct {
	KeyPrefix string   `name:"key-prefix" default:"lambda-packages/" help:"S3 key prefix of the zips"`
	All       bool     `help:"Download every entry, not only the missing ones"`
	Names     []string `arg:"" optional:"" help:"Entries to download"`
}

func (c *PackagesDownloadCmd) Run(env *Env) error {
	ctx := context.Background()

	names := c.Names
	if len(names) == 0 {
		var err error
		if c.All {
			names, err = manifestNames(env.Packages)
		} else {
			names, err = env.Packages.Missing()
		}
		if err != nil {
			return err
		}
	}
	if len(names) == 0 {
		fmt.Fprintln(env.Out, "nothing to download")
		return nil
	}

	clients, err := env.Clients(ctx)
	if err != nil {
		return err
	}
	bucket := env.Config.ResourceNames().Bucket("lambda-deployments")

	// ダウンロード
	var failed []string
	for _, name := range names {
		if _, err := env.Packages.Lookup(name); err != nil {
			return err
		}
		key := c.KeyPrefix + name + ".zip"
		if err := download(ctx, clients.S3, bucket, key, env.Packages.PackagePath(name)); err != nil {
			env.Logger.WithError(err).Errorf("failed to download %s", name)
			failed = append(failed, name)
			continue
		}
		env.Logger.Infof("downloaded s3://%s/%s", bucket, key)
	}
	if len(failed) > 0 {
		return fmt.Errorf("download failed for %s", strings.Join(failed, ", "))
	}
	return nil
}

func download(ctx context.Context, client S3API, bucket, key, path string) error {
	obj, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	defer obj.Body.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, obj.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

func manifestNames(repo *packages.Repository) ([]string, error) {
	configs, err := repo.All()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(configs))
	for _, c := range configs {
		names = append(names, c.Name)
	}
	return names, nil
}
