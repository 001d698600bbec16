package docstore_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	goredis "github.com/redis/go-redis/v9"

	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore"
	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore/file"
	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore/inmemory"
	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore/redis"
)

// backendContract is shared by every Backend implementation.
func backendContract(newBackend func() docstore.Backend) {
	var (
		ctx     context.Context
		backend docstore.Backend
	)

	BeforeEach(func() {
		ctx = context.Background()
		backend = newBackend()
		DeferCleanup(func() {
			Expect(backend.Close()).To(Succeed())
		})
	})

	It("reports a missing document as not found", func() {
		data, found, err := backend.Read(ctx, "missing.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeFalse())
		Expect(data).To(BeNil())
	})

	It("replaces the whole document on write", func() {
		Expect(backend.Write(ctx, "courses.json", []byte(`[{"courseId":"1"}]`))).To(Succeed())
		Expect(backend.Write(ctx, "courses.json", []byte(`[]`))).To(Succeed())

		data, found, err := backend.Read(ctx, "courses.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(string(data)).To(Equal("[]"))
	})

	It("keeps documents independent", func() {
		Expect(backend.Write(ctx, "users.json", []byte(`["u"]`))).To(Succeed())
		Expect(backend.Write(ctx, "courses.json", []byte(`["c"]`))).To(Succeed())

		users, _, err := backend.Read(ctx, "users.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(users)).To(Equal(`["u"]`))
	})

	It("does not share buffers with callers", func() {
		buf := []byte(`["a"]`)
		Expect(backend.Write(ctx, "users.json", buf)).To(Succeed())
		buf[2] = 'z'

		data, _, err := backend.Read(ctx, "users.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`["a"]`))
	})

	It("survives concurrent writers with last write winning", func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				Expect(backend.Write(ctx, "users.json", []byte(`[]`))).To(Succeed())
			}()
		}
		wg.Wait()

		data, found, err := backend.Read(ctx, "users.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(string(data)).To(Equal("[]"))
	})

	Describe("Ensure", func() {
		It("creates an empty sequence for a missing document", func() {
			Expect(docstore.Ensure(ctx, backend, "users.json")).To(Succeed())

			data, found, err := backend.Read(ctx, "users.json")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(data).To(Equal(docstore.EmptyDocument))
		})

		It("leaves an existing document alone", func() {
			Expect(backend.Write(ctx, "users.json", []byte(`[{"userId":1}]`))).To(Succeed())
			Expect(docstore.Ensure(ctx, backend, "users.json")).To(Succeed())

			data, _, err := backend.Read(ctx, "users.json")
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`[{"userId":1}]`))
		})
	})
}

var _ = Describe("Backends", func() {
	Context("file", func() {
		backendContract(func() docstore.Backend {
			b, err := file.New(GinkgoT().TempDir())
			Expect(err).NotTo(HaveOccurred())
			return b
		})
	})

	Context("inmemory", func() {
		backendContract(func() docstore.Backend {
			return inmemory.New()
		})
	})

	Context("redis", func() {
		backendContract(func() docstore.Backend {
			mr := miniredis.RunT(GinkgoT())
			client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
			return redis.NewWithClient(client, "coursenaut:")
		})
	})
})

var _ = Describe("file backend", func() {
	It("writes documents under the data directory without leaving temp files", func() {
		dir := GinkgoT().TempDir()
		b, err := file.New(filepath.Join(dir, "nested"))
		Expect(err).NotTo(HaveOccurred())

		Expect(b.Write(context.Background(), "courses.json", []byte("[]"))).To(Succeed())

		entries, err := os.ReadDir(filepath.Join(dir, "nested"))
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Name()).To(Equal("courses.json"))
	})

	It("requires a data directory", func() {
		_, err := file.New("")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("redis backend", func() {
	It("stores documents under the configured key prefix", func() {
		mr := miniredis.RunT(GinkgoT())
		b := redis.NewWithClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), "lms:")
		DeferCleanup(b.Close)

		Expect(b.Write(context.Background(), "users.json", []byte("[]"))).To(Succeed())
		Expect(mr.Exists("lms:users.json")).To(BeTrue())
	})
})

var _ = Describe("New", func() {
	It("builds the configured backend", func() {
		mr := miniredis.RunT(GinkgoT())
		host, port := mr.Host(), mr.Server().Addr().Port

		cases := []struct {
			cfg  config.AppConfig
			want interface{}
		}{
			{cfg: config.AppConfig{Store: config.Store{Backend: config.BackendFile, DataDir: GinkgoT().TempDir()}}, want: &file.Store{}},
			{cfg: config.AppConfig{Store: config.Store{Backend: config.BackendInMemory}}, want: &inmemory.Store{}},
			{cfg: config.AppConfig{Store: config.Store{Backend: config.BackendRedis}, Redis: config.Redis{Host: host, Port: port}}, want: &redis.Store{}},
		}
		for _, c := range cases {
			b, err := docstore.New(&c.cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(b).To(BeAssignableToTypeOf(c.want))
			Expect(b.Close()).To(Succeed())
		}
	})

	It("rejects an unknown backend", func() {
		_, err := docstore.New(&config.AppConfig{Store: config.Store{Backend: "s3"}})
		Expect(err).To(MatchError(ContainSubstring("unsupported store backend")))
	})
})
