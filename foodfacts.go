package tracker

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/DKushman/calorie-tracker/date"
)

// Open Food Facts product lookup: given a barcode, fetch the per-100g macro
// figures so a scanned product can pre-fill a meal draft.

// foodFactsURL is the public product endpoint, keyed by barcode.
const foodFactsURL = "https://world.openfoodfacts.org/api/v0/product/%s.json"

// Product is the nutrition facts of one looked-up product, per 100g.
type Product struct {
	Barcode         string
	Name            string
	CaloriesPer100g float64
	ProteinPer100g  float64
	CarbsPer100g    float64
	FatPer100g      float64
}

// Draft scales the product to the consumed weight in grams and returns a
// meal draft ready to log.
func (p Product) Draft(grams float64) Draft {
	factor := grams / 100
	return Draft{
		Name:     p.Name,
		Calories: A(p.CaloriesPer100g * factor),
		Protein:  A(p.ProteinPer100g * factor),
		Carbs:    A(p.CarbsPer100g * factor),
		Fat:      A(p.FatPer100g * factor),
	}
}

// LookupProduct fetches a product by barcode from Open Food Facts. Product
// data moves slowly, so the request goes through a client whose disk cache
// expires daily.
func LookupProduct(barcode string) (Product, error) {
	return lookupProduct(cachedClient(), barcode)
}

func lookupProduct(client *http.Client, barcode string) (Product, error) {
	var jobj any
	addr := fmt.Sprintf(foodFactsURL, barcode)
	if err := jwget(client, addr, &jobj); err != nil {
		return Product{}, fmt.Errorf("could not fetch product %q: %w", barcode, err)
	}

	// status 1 means the product exists in the database.
	if status, err := jsonNumber(jobj, "$.status"); err != nil || status != 1 {
		return Product{}, fmt.Errorf("product %q not found", barcode)
	}

	p := Product{Barcode: barcode}
	if name, err := jsonpath.Get("$.product.product_name", jobj); err == nil {
		p.Name, _ = name.(string)
	}
	if p.Name == "" {
		p.Name = barcode
	}

	var err error
	// Field names follow the Open Food Facts nutriments schema.
	if p.CaloriesPer100g, err = jsonNumber(jobj, `$.product.nutriments["energy-kcal_100g"]`); err != nil {
		return Product{}, fmt.Errorf("product %q has no energy figure: %w", barcode, err)
	}
	// Macros are optional on sparse products and default to 0.
	p.ProteinPer100g, _ = jsonNumber(jobj, `$.product.nutriments["proteins_100g"]`)
	p.CarbsPer100g, _ = jsonNumber(jobj, `$.product.nutriments["carbohydrates_100g"]`)
	p.FatPer100g, _ = jsonNumber(jobj, `$.product.nutriments["fat_100g"]`)
	return p, nil
}

// jsonNumber extracts a float64 at path.
func jsonNumber(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: not a number: %v", path, jval)
	}
	return val, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// diskCache implements a simple disk cache for HTTP responses. The key
// embeds today's date, so the cache expires every day.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", date.Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// cachedClient returns a client with a disk cache that expires daily.
func cachedClient() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}
