// Package templates holds the templ components for the demo pages.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Home returns the demo landing page. The page is static HTML: a button that
// fetches /random_enemy and renders the returned pair.
func Home() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, homePage)
		return err
	})
}

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
    <title>Abstract Factory Demo</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        #results { margin-top: 20px; }
        button { padding: 10px 20px; font-size: 16px; cursor: pointer; }
    </style>
</head>
<body>
    <h1>Abstract Factory Demo</h1>
    <p>This page demonstrates the Abstract Factory pattern by randomly selecting an enemy and weapon from a broader selection when you click the button below.</p>
    <button id="roll-button">Roll for Enemy and Weapon</button>
    <div id="results"></div>

    <script>
        const button = document.getElementById('roll-button');
        const resultsDiv = document.getElementById('results');

        button.addEventListener('click', () => {
            fetch('/random_enemy')
                .then(response => response.json())
                .then(data => {
                    resultsDiv.innerHTML =
                        '<h2>Results</h2>' +
                        '<p><strong>Enemy Attack:</strong> ' + data.enemy_attack + '</p>' +
                        '<p><strong>Weapon Use:</strong> ' + data.weapon_use + '</p>';
                })
                .catch(err => {
                    resultsDiv.innerHTML = '<p style="color:red;">An error occurred.</p>';
                    console.error(err);
                });
        });
    </script>
</body>
</html>
`
