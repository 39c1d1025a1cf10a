package curl

import (
	"errors"
	"fmt"
	"strings"
)

type request struct {
	method  string
	url     string
	head    bool
	headers []string
	data    []string
	user    string
	options []string
}

type option struct {
	long       string
	short      byte
	takesValue bool
	apply      func(r *request, v string) error
}

var options = []option{
	{long: "request", short: 'X', takesValue: true, apply: func(r *request, v string) error { r.method = v; return nil }},
	{long: "header", short: 'H', takesValue: true, apply: addHeader},
	{long: "data", short: 'd', takesValue: true, apply: addData},
	{long: "data-raw", takesValue: true, apply: addData},
	{long: "data-binary", takesValue: true, apply: addData},
	{long: "data-ascii", takesValue: true, apply: addData},
	{long: "url", takesValue: true, apply: setURL},
	{long: "user", short: 'u', takesValue: true, apply: func(r *request, v string) error { r.user = v; return nil }},
	{long: "head", short: 'I', apply: func(r *request, _ string) error { r.head = true; return nil }},
	{long: "location", short: 'L', apply: addOption("location", "true")},
	{long: "insecure", short: 'k', apply: addOption("insecure", "true")},
	{long: "compressed", apply: addOption("compressed", "true")},
	{long: "retry", takesValue: true, apply: addValueOption("retry")},
	{long: "proxy", short: 'x', takesValue: true, apply: addValueOption("proxy")},
	{long: "silent", short: 's', apply: ignore},
	{long: "verbose", short: 'v', apply: ignore},
	{long: "include", short: 'i', apply: ignore},
}

func ignore(*request, string) error {
	return nil
}

func addOption(name, value string) func(*request, string) error {
	return func(r *request, _ string) error {
		r.options = append(r.options, name+": "+value)
		return nil
	}
}

func addValueOption(name string) func(*request, string) error {
	return func(r *request, v string) error {
		r.options = append(r.options, name+": "+v)
		return nil
	}
}

func addHeader(r *request, v string) error {
	name, value, ok := strings.Cut(v, ":")
	if !ok {
		// "Name;" sends an empty header.
		if n, empty := strings.CutSuffix(v, ";"); empty {
			r.headers = append(r.headers, strings.TrimSpace(n)+":")
			return nil
		}
		return fmt.Errorf("invalid header %q", v)
	}
	name, value = strings.TrimSpace(name), strings.TrimSpace(value)
	if name == "" {
		return fmt.Errorf("invalid header %q", v)
	}
	if value == "" {
		r.headers = append(r.headers, name+":")
		return nil
	}
	r.headers = append(r.headers, name+": "+value)
	return nil
}

func addData(r *request, v string) error {
	r.data = append(r.data, v)
	return nil
}

func setURL(r *request, v string) error {
	if r.url != "" {
		return fmt.Errorf("unexpected argument %q", v)
	}
	r.url = v
	return nil
}

func lookupLong(name string) (option, bool) {
	for _, o := range options {
		if o.long == name {
			return o, true
		}
	}
	return option{}, false
}

func lookupShort(c byte) (option, bool) {
	for _, o := range options {
		if o.short != 0 && o.short == c {
			return o, true
		}
	}
	return option{}, false
}

func convert(args []string) (string, error) {
	if len(args) == 0 || args[0] != "curl" {
		return "", errors.New("a command must start with 'curl'")
	}
	r := &request{}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		var (
			opt    option
			value  string
			inline bool
			known  bool
		)
		switch {
		case strings.HasPrefix(arg, "--"):
			name, v, hasValue := strings.Cut(arg[2:], "=")
			opt, known = lookupLong(name)
			value, inline = v, hasValue
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			// Flags may be bundled ("-sL"); the first option taking a
			// value ends the bundle and the rest of arg is its value.
			j := 1
			for ; j < len(arg); j++ {
				opt, known = lookupShort(arg[j])
				if !known || opt.takesValue {
					break
				}
				if err := opt.apply(r, ""); err != nil {
					return "", err
				}
			}
			if j == len(arg) {
				continue
			}
			if known && j+1 < len(arg) {
				value, inline = arg[j+1:], true
			}
		default:
			if err := setURL(r, arg); err != nil {
				return "", err
			}
			continue
		}
		if !known {
			return "", fmt.Errorf("unsupported option %q", arg)
		}
		if opt.takesValue && !inline {
			if i+1 >= len(args) {
				return "", fmt.Errorf("missing value for %q", arg)
			}
			i++
			value = args[i]
		}
		if err := opt.apply(r, value); err != nil {
			return "", err
		}
	}
	if r.url == "" {
		return "", errors.New("missing URL")
	}
	return r.hurl(), nil
}

func (r *request) hurl() string {
	method := r.method
	if method == "" {
		switch {
		case r.head:
			method = "HEAD"
		case len(r.data) > 0:
			method = "POST"
		default:
			method = "GET"
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", method, r.url)
	for _, h := range r.headers {
		b.WriteString(h + "\n")
	}
	if len(r.data) > 0 && !r.hasHeader("Content-Type") && !strings.HasPrefix(r.data[0], "@") {
		b.WriteString("Content-Type: application/x-www-form-urlencoded\n")
	}
	if r.user != "" {
		user, password, _ := strings.Cut(r.user, ":")
		b.WriteString("[BasicAuth]\n")
		if password == "" {
			b.WriteString(user + ":\n")
		} else {
			b.WriteString(user + ": " + password + "\n")
		}
	}
	if len(r.options) > 0 {
		b.WriteString("[Options]\n")
		for _, o := range r.options {
			b.WriteString(o + "\n")
		}
	}
	if len(r.data) > 0 {
		data := strings.Join(r.data, "&")
		if path, ok := strings.CutPrefix(data, "@"); ok && len(r.data) == 1 {
			b.WriteString("file," + path + ";\n")
		} else {
			b.WriteString("```\n" + data + "\n```\n")
		}
	}
	return b.String()
}

func (r *request) hasHeader(name string) bool {
	for _, h := range r.headers {
		n, _, _ := strings.Cut(h, ":")
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
