package sanitizer

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain heading", `<h1 id="title">Title</h1>`, `<h1 id="title">Title</h1>`},
		{"mark kept", `<p>a <mark>b</mark></p>`, `<p>a <mark>b</mark></p>`},
		{"script removed", `<p>x</p><script>alert(1)</script>`, `<p>x</p>`},
		{"event handler dropped", `<p onclick="evil()">x</p>`, `<p>x</p>`},
		{"javascript link", `<a href="javascript:alert(1)">x</a>`, `<a rel="nofollow">x</a>`},
		{"http link", `<a href="https://go.dev">go</a>`, `<a href="https://go.dev" rel="nofollow">go</a>`},
		{"fragment link", `<a href="#intro">i</a>`, `<a href="#intro" rel="nofollow">i</a>`},
		{"comment removed", `<!-- hi --><p>x</p>`, `<p>x</p>`},
		{"iframe removed with children", `<iframe src="x"><p>y</p></iframe>`, ``},
		{"styled pre", `<pre style="color:red"><span style="x">a</span></pre>`, `<pre style="color:red"><span style="x">a</span></pre>`},
		{"style on p dropped", `<p style="x">a</p>`, `<p>a</p>`},
		{"task list", `<li><input type="checkbox" checked="" disabled=""/> done</li>`, `<li><input type="checkbox" checked="" disabled=""/> done</li>`},
		{"text escaped", `a &lt; b`, `a &lt; b`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Sanitize([]byte(tt.input)))
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
