package portfolio

// Third-party scaffolding emitted verbatim with every generated site: the
// Decap CMS admin bundle and the Netlify deployment config. Opaque blobs,
// copied through unchanged.

const decapAdminIndex = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Portfolio Content Manager</title>
  </head>
  <body>
    <script src="https://unpkg.com/decap-cms@^3.0.0/dist/decap-cms.js"></script>
  </body>
</html>
`

const decapConfigYML = `backend:
  name: git-gateway
  branch: main
media_folder: "images/uploads"
public_folder: "/images/uploads"
collections:
  - name: "portfolio"
    label: "Portfolio"
    files:
      - label: "Profile"
        name: "profile"
        file: "data/portfolio.json"
        format: "json"
        fields:
          - {{ label: "Name", name: "name", widget: "string" }}
          - {{ label: "Bio", name: "bio", widget: "text" }}
          - label: "Projects"
            name: "projects"
            widget: "list"
            fields:
              - {{ label: "Title", name: "title", widget: "string" }}
              - {{ label: "Description", name: "description", widget: "text" }}
              - {{ label: "Image", name: "image", widget: "string", required: false }}
`

const netlifyTOML = `[build]
  publish = "."
`
